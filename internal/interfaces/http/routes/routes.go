// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/clothing-store/internal/config"
	"github.com/your-org/clothing-store/internal/interfaces/http/handlers"
	"github.com/your-org/clothing-store/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	setupAuthRoutes(rg, db, redisClient, cfg, logger)
	setupProductRoutes(rg, db, cfg)
	setupCartRoutes(rg, db, redisClient, cfg)
	setupOrderRoutes(rg, db, redisClient, cfg, logger)
	setupAdminRoutes(rg, db, cfg)
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	authHandler := handlers.NewAuthHandler(db, redisClient, cfg, logger)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)
			protected.PUT("/password", authHandler.ChangePassword)
		}
	}
}

// setupProductRoutes sets up the public catalog routes
func setupProductRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// setupCartRoutes sets up cart routes shared by guests and users
func setupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}

	merge := rg.Group("/cart/merge")
	merge.Use(middleware.AuthMiddleware(cfg))
	{
		merge.POST("", cartHandler.MergeGuestCart)
	}
}

// setupOrderRoutes sets up checkout and order routes
func setupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	orderHandler := handlers.NewOrderHandler(db, redisClient, cfg, logger)
	invoiceHandler := handlers.NewInvoiceHandler(db, redisClient, cfg, logger)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.POST("", orderHandler.Checkout)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/invoice", invoiceHandler.GenerateInvoice)
	}
}

// setupAdminRoutes sets up admin catalog management routes
func setupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		products := admin.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}
	}
}
