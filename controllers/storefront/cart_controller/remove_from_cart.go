package cart_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

// RemoveFromCart godoc
// @Summary Remove one cart line by position
// @Tags Storefront - Cart
// @Produce json
// @Param index path int true "Zero-based line index"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "No line at that index"
// @Router /cart/{index} [delete]
func RemoveFromCart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid line index"))
		return
	}

	err = carts.RemoveLine(c.Request.Context(), middleware.GetProfileID(c), index)
	if errors.Is(err, services.ErrLineOutOfRange) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No cart line at that index"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Line removed", nil))
}
