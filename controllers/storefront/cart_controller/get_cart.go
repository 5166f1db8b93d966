package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

// GetCart godoc
// @Summary Cart drawer contents
// @Description Returns the stored cart lines with subtotal, discount and total under the active coupon.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /cart [get]
func GetCart(c *gin.Context) {
	view, err := carts.Cart(c.Request.Context(), middleware.GetProfileID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart", view))
}
