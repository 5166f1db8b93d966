package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

// ProductDetail is the detail view: the mirrored product plus the derived
// fields the page needs (effective stock, flattened gallery, preselected
// color).
type ProductDetail struct {
	models.Product
	EffectiveStock int      `json:"effectiveStock"`
	GalleryImages  []string `json:"galleryImages"`
	DefaultColor   string   `json:"defaultColor"`
}

// GetProductByID godoc
// @Summary Single product detail
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	product, err := backend.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	detail := ProductDetail{
		Product:        *product,
		EffectiveStock: product.StockOrDefault(),
		GalleryImages:  product.GalleryImages(),
	}
	if len(product.Colors) > 0 {
		detail.DefaultColor = product.Colors[0]
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product detail", detail))
}
