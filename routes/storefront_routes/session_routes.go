package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/auth_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/session_controller"
)

func SetupSessionRoutes(rg *gin.RouterGroup) {
	session := rg.Group("/session")

	session.GET("", session_controller.GetSession)
	session.PATCH("", session_controller.UpdateSession)
	session.POST("/reload", session_controller.ReloadSession)

	// ════════════════════════════════════════════════════════════
	// Auth (proxied to the account backend)
	// ════════════════════════════════════════════════════════════
	auth := rg.Group("/auth")

	auth.POST("/login", auth_controller.Login)
	auth.POST("/register", auth_controller.Register)
	auth.POST("/logout", auth_controller.Logout)
}
