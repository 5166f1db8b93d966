package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/cache/parts_cache"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

// partSlots maps each build-planner slot to the category keywords the
// backend matches against.
var partSlots = map[string]string{
	"cpu":       "CPU,Processor",
	"mainboard": "Motherboard,Mainboard",
	"gpu":       "GPU,VGA,Graphic Card",
	"ram":       "RAM,Memory",
	"storage":   "SSD,HDD,Storage",
	"psu":       "PSU,Power Supply",
	"case":      "Case,Chassis",
}

// GetParts godoc
// @Summary Build-planner part candidates
// @Description Lists the products matching one build slot (cpu, mainboard, gpu, ram, storage, psu, case). The category keywords are resolved server side.
// @Tags Storefront - Products
// @Produce json
// @Param slot query string true "Build slot name"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Unknown slot"
// @Router /store/parts [get]
func GetParts(c *gin.Context) {
	slot := c.Query("slot")
	categoryQuery, ok := partSlots[slot]
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown build slot"))
		return
	}

	if products, ok := parts_cache.Get(slot); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Parts for slot "+slot, products))
		return
	}

	products, err := backend.GetProducts(c.Request.Context(), services.CatalogQuery{Category: categoryQuery})
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch parts"))
		return
	}
	parts_cache.Set(slot, products)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Parts for slot "+slot, products))
}
