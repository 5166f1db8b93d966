package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

// StartCheckout godoc
// @Summary Begin the checkout flow
// @Description Posts the cart to the backend and moves the flow to "processing". The flow is not cancellable; poll the status endpoint. On success the cart is cleared and the order id reported.
// @Tags Storefront - Cart
// @Produce json
// @Success 202 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Cart empty or checkout already running"
// @Router /cart/checkout [post]
func StartCheckout(c *gin.Context) {
	err := carts.StartCheckout(c.Request.Context(), middleware.GetProfileID(c))
	switch {
	case errors.Is(err, services.ErrCartEmpty):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cart is empty"))
		return
	case errors.Is(err, services.ErrCheckoutRunning):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Checkout already in progress"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start checkout"))
		return
	}

	c.JSON(http.StatusAccepted, models.SuccessResponse(c, "Processing payment",
		models.CheckoutStatus{State: models.CheckoutProcessing}))
}

// GetCheckoutStatus godoc
// @Summary Poll the checkout flow
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /cart/checkout [get]
func GetCheckoutStatus(c *gin.Context) {
	status := carts.CheckoutStatus(middleware.GetProfileID(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout status", status))
}

// AcknowledgeCheckout godoc
// @Summary Dismiss a finished checkout
// @Description Returns the flow to idle once the confirmation has been shown. A flow still processing is left alone.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /cart/checkout [delete]
func AcknowledgeCheckout(c *gin.Context) {
	carts.AcknowledgeCheckout(middleware.GetProfileID(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout dismissed", nil))
}
