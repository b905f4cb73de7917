package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kacper-olenkiewicz/SneakerHub/auth"
	"github.com/kacper-olenkiewicz/SneakerHub/config"
	ordercontroller "github.com/kacper-olenkiewicz/SneakerHub/controllers/order"
	productcontroller "github.com/kacper-olenkiewicz/SneakerHub/controllers/product"
	seedcontroller "github.com/kacper-olenkiewicz/SneakerHub/controllers/seed"
	"github.com/kacper-olenkiewicz/SneakerHub/middleware"
)

// SetupRoutes is the single entry-point wiring auth, catalog, order and
// seed route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, hub *ordercontroller.Hub) {
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db, cfg.JWTSecret))
		authGroup.POST("/login", auth.Login(db, cfg.JWTSecret))
	}

	// Public storefront reads; mutations are worker-only.
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))

		workerProducts := products.Group("")
		workerProducts.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireWorker())
		{
			workerProducts.POST("", productcontroller.CreateProduct(db))
			workerProducts.DELETE("", productcontroller.DeleteProduct(db))
			workerProducts.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
	}

	orders := api.Group("/orders")
	{
		orders.GET("", ordercontroller.GetOrders(db))
		orders.POST("", ordercontroller.CreateOrder(db, hub))
		orders.GET("/ws", hub.ServeWS())

		workerOrders := orders.Group("")
		workerOrders.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireWorker())
		{
			workerOrders.DELETE("", ordercontroller.DeleteOrder(db))
		}
	}

	api.POST("/seed", seedcontroller.SeedWorkers(db, cfg.SeedPassword))
}
