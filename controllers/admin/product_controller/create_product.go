package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/cache/parts_cache"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

// CreateProduct godoc
// @Summary Create a catalog product
// @Description Normalizes the admin form payload (blank category to the default label, placeholder image, comma-separated lists split) and forwards it to the product service.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product fields"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	created, err := backend.CreateProduct(c.Request.Context(), req.Normalize())
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	refreshCatalog(c)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", created))
}

// refreshCatalog reloads the caller's catalog view after a mutation and
// drops the shared build-planner cache.
func refreshCatalog(c *gin.Context) {
	parts_cache.Invalidate()
	_ = pipelines.For(middleware.GetProfileID(c)).Refresh(c.Request.Context())
}
