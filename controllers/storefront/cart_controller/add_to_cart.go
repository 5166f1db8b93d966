package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

type addToCartRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	SelectedColor string `json:"selectedColor"`
}

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Snapshots the product into a new cart line. Blocked with a message when the product is known to be sold out, or declares color options and none was selected.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param item body addToCartRequest true "Product and color selection"
// @Success 201 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 409 {object} models.ApiResponse "Add blocked"
// @Router /cart [post]
func AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	// Always snapshot from the backend so the line reflects current price
	// and stock, not whatever the page had cached.
	product, err := backend.GetProduct(c.Request.Context(), req.ProductID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	line, err := carts.AddToCart(c.Request.Context(), middleware.GetProfileID(c), *product, req.SelectedColor)
	switch {
	case errors.Is(err, services.ErrOutOfStock):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Sorry, this product is out of stock"))
		return
	case errors.Is(err, services.ErrColorRequired):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Please select a color first"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Added to cart", line))
}
