package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/dashboard_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/product_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

func SetupProductRoutes(rg *gin.RouterGroup, sessions *services.SessionService) {
	store := rg.Group("/store")

	// ════════════════════════════════════════════════════════════
	// Catalog (Public)
	// ════════════════════════════════════════════════════════════
	store.GET("/products", product_controller.GetProducts)
	store.GET("/products/:id", product_controller.GetProductByID)
	store.GET("/parts", product_controller.GetParts)

	// ════════════════════════════════════════════════════════════
	// Dashboard (Admin Session Required)
	// ════════════════════════════════════════════════════════════
	store.GET("/dashboard", middleware.AdminOnly(sessions), dashboard_controller.GetInventoryStats)
}
