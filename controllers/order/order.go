package ordercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kacper-olenkiewicz/SneakerHub/models"
)

type OrderItemInput struct {
	ProductID *float64 `json:"productId"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	Image     *string  `json:"image"`
}

type CreateOrderRequest struct {
	UserID uint             `json:"userId" binding:"required"`
	Items  []OrderItemInput `json:"items" binding:"required,min=1"`
}

// GetOrders lists orders newest-first with user and items preloaded. The
// optional userId query narrows to one customer; anything non-numeric is
// ignored and yields the full list (worker view).
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("User").Preload("Items").Order("created_at DESC")

		if userIDParam := c.Query("userId"); userIDParam != "" {
			if userID, err := strconv.ParseUint(userIDParam, 10, 64); err == nil {
				query = query.Where("user_id = ?", uint(userID))
			}
		}

		orders := []models.Order{}
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// CreateOrder accepts a checkout payload, keeps item productIds only when
// the product still exists, computes the total server-side and persists
// the order with denormalized item snapshots. The created order is
// broadcast to worker panel websocket clients.
func CreateOrder(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
			return
		}

		var user models.User
		if err := db.First(&user, req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		validIDs, err := existingProductIDs(db, req.Items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate products"})
			return
		}

		var total float64
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, in := range req.Items {
			price := in.Price
			if price < 0 {
				price = 0
			}
			qty := in.Quantity
			if qty < 1 {
				qty = 1
			}
			total += price * float64(qty)

			name := in.Name
			if name == "" {
				name = "Unknown product"
			}

			item := models.OrderItem{
				ProductName:     name,
				ProductImage:    in.Image,
				PriceAtPurchase: price,
				Quantity:        qty,
			}
			if in.ProductID != nil {
				id := uint(*in.ProductID)
				if validIDs[id] {
					item.ProductID = &id
				}
			}
			items = append(items, item)
		}

		order := models.Order{
			UserID: req.UserID,
			Total:  total,
			Status: models.OrderStatusPending,
			Items:  items,
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		order.User = user
		if hub != nil {
			hub.Broadcast(order)
		}
		c.JSON(http.StatusCreated, order)
	}
}

// DeleteOrder removes an order (and its items, by cascade) by the id
// query parameter.
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Query("id")
		id, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order id is required"})
			return
		}

		result := db.Delete(&models.Order{}, uint(id))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// existingProductIDs resolves which of the payload's catalog references
// still exist. Lines pointing anywhere else are kept as free-text history
// rows without linkage.
func existingProductIDs(db *gorm.DB, items []OrderItemInput) (map[uint]bool, error) {
	seen := make(map[uint]bool)
	candidates := make([]uint, 0, len(items))
	for _, in := range items {
		if in.ProductID == nil || *in.ProductID < 0 {
			continue
		}
		id := uint(*in.ProductID)
		if !seen[id] {
			seen[id] = true
			candidates = append(candidates, id)
		}
	}

	valid := make(map[uint]bool, len(candidates))
	if len(candidates) == 0 {
		return valid, nil
	}

	var existing []models.Product
	if err := db.Select("id").Where("id IN ?", candidates).Find(&existing).Error; err != nil {
		return nil, err
	}
	for _, p := range existing {
		valid[p.ID] = true
	}
	return valid, nil
}
