package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/cart_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/wishlist_controller"
)

func SetupCartRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")

	cart.GET("", cart_controller.GetCart)
	cart.POST("", cart_controller.AddToCart)
	cart.DELETE("/:index", cart_controller.RemoveFromCart)

	// Coupons
	cart.POST("/coupon", cart_controller.ApplyCoupon)
	cart.DELETE("/coupon", cart_controller.ClearCoupon)

	// Checkout lifecycle
	cart.POST("/checkout", cart_controller.StartCheckout)
	cart.GET("/checkout", cart_controller.GetCheckoutStatus)
	cart.DELETE("/checkout", cart_controller.AcknowledgeCheckout)

	// ════════════════════════════════════════════════════════════
	// Wishlist
	// ════════════════════════════════════════════════════════════
	wishlist := rg.Group("/wishlist")

	wishlist.GET("", wishlist_controller.GetWishlist)
	wishlist.POST("/toggle", wishlist_controller.ToggleWishlist)
}
