package cart_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon godoc
// @Summary Apply a discount code to the cart
// @Description Resolves the code against the backend. Success stores the coupon for this cart session; any failure clears a previously active coupon. A new code always supersedes the old one.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param coupon body applyCouponRequest true "Discount code"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Code not found"
// @Router /cart/coupon [post]
func ApplyCoupon(c *gin.Context) {
	var req applyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	coupon, err := carts.ApplyCoupon(c.Request.Context(), middleware.GetProfileID(c), code)
	if err != nil {
		// active coupon already cleared by the service
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, services.CouponNotFoundMessage))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, coupon.Message, coupon))
}

// ClearCoupon godoc
// @Summary Drop the active coupon
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /cart/coupon [delete]
func ClearCoupon(c *gin.Context) {
	carts.ClearCoupon(middleware.GetProfileID(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Coupon cleared", nil))
}
