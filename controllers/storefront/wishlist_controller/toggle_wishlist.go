package wishlist_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

var (
	carts   *services.CartService
	backend *services.BackendClient
)

func Init(cartService *services.CartService, client *services.BackendClient) {
	carts = cartService
	backend = client
}

type toggleRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// ToggleWishlist godoc
// @Summary Toggle a product on the wishlist
// @Description Inserts the product if absent, removes it if present. Never duplicates an entry.
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param item body toggleRequest true "Product reference"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /wishlist/toggle [post]
func ToggleWishlist(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	product, err := backend.GetProduct(c.Request.Context(), req.ProductID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	added, err := carts.ToggleWishlist(c.Request.Context(), middleware.GetProfileID(c), *product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	message := "Removed from wishlist"
	if added {
		message = "Added to wishlist"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, gin.H{"wishlisted": added}))
}

// GetWishlist godoc
// @Summary List wishlist entries
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /wishlist [get]
func GetWishlist(c *gin.Context) {
	items, err := carts.Wishlist(c.Request.Context(), middleware.GetProfileID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load wishlist"))
		return
	}
	if items == nil {
		items = []models.Product{}
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist", items))
}
