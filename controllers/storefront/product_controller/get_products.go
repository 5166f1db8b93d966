package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

// GetProducts godoc
// @Summary Storefront product search
// @Description Records the latest keyword/price/sort inputs for this profile and returns the current category-filtered catalog view. Backend-visible input changes are debounced; the category filter is applied client side over the last fetched set.
// @Tags Storefront - Products
// @Produce json
// @Param keyword query string false "Free-text keyword, matched by the backend"
// @Param minPrice query string false "Minimum price, empty means no bound"
// @Param maxPrice query string false "Maximum price, empty means no bound"
// @Param sort query string false "Price sort (asc | desc)" default(asc)
// @Param category query string false "Category tab" default(All)
// @Success 200 {object} models.ApiResponse
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	query := services.CatalogQuery{
		Keyword:  c.Query("keyword"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Sort:     c.DefaultQuery("sort", "asc"),
		Category: c.DefaultQuery("category", services.CategoryAll),
	}

	pipeline := pipelines.For(middleware.GetProfileID(c))
	pipeline.SetQuery(query)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog view", pipeline.Snapshot()))
}
