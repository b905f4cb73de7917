package productcontroller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kacper-olenkiewicz/SneakerHub/models"
)

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Stock       *float64 `json:"stock"`
}

// CreateProduct adds a catalog row from the worker panel. Category is
// stored lowercased, description is defaulted, stock is parse-or-0.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, price and category are required"})
			return
		}

		description := req.Description
		if description == "" {
			description = fmt.Sprintf("%s - %s", req.Name, req.Category)
		}

		stock := 0
		if req.Stock != nil && *req.Stock > 0 {
			stock = int(*req.Stock)
		}

		product := models.Product{
			Name:        req.Name,
			Price:       req.Price,
			Category:    strings.ToLower(req.Category),
			Image:       req.Image,
			Description: description,
			Stock:       stock,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
