package admin_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/admin/product_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

// SetupAdminRoutes sets up all admin routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup, sessions *services.SessionService) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Admin Session Required)
	// ════════════════════════════════════════════════════════════
	admin.Use(
		middleware.AdminOnly(sessions),
		middleware.RateLimiter(100, time.Minute),
	)
	{
		admin.POST("/products", product_controller.CreateProduct)
		admin.PATCH("/products/:id", product_controller.UpdateProduct)
		admin.DELETE("/products/:id", product_controller.DeleteProduct)
	}
}
