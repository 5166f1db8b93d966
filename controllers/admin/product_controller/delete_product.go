package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

// DeleteProduct godoc
// @Summary Remove a catalog product
// @Description Deletes the product upstream and prunes it from the acting profile's wishlist.
// @Tags Admin - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	err := backend.DeleteProduct(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	profileID := middleware.GetProfileID(c)
	if err := carts.PruneWishlist(c.Request.Context(), profileID, id); err != nil {
		log.Printf("⚠️ Failed to prune wishlist after deleting product %s: %v", id, err)
	}

	refreshCatalog(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted", gin.H{"id": id}))
}
