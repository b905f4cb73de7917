package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kacper-olenkiewicz/SneakerHub/catalog"
	"github.com/kacper-olenkiewicz/SneakerHub/models"
)

// GetProducts returns database rows newest-first with the static fallback
// catalog appended, so the storefront always has something to render. The
// two shapes share no id space; clients bridge them via stock keys.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		response := make([]any, 0, len(products)+8)
		for _, p := range products {
			response = append(response, p)
		}
		for _, p := range catalog.DefaultProducts() {
			response = append(response, p)
		}
		c.JSON(http.StatusOK, response)
	}
}
