package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

// UpdateProduct godoc
// @Summary Edit a catalog product
// @Description Applies the same payload normalization as create and PATCHes the product service.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.ProductRequest true "Product fields"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	updated, err := backend.UpdateProduct(c.Request.Context(), c.Param("id"), req.Normalize())
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	refreshCatalog(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated", updated))
}
