package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

var backend *services.BackendClient

func Init(client *services.BackendClient) {
	backend = client
}

// InventoryStats is the admin dashboard summary over the whole catalog.
// Unlike the detail view, a missing stock count is treated as zero here: the
// dashboard reports what the database actually knows.
type InventoryStats struct {
	TotalItems     int              `json:"totalItems"`
	InventoryValue float64          `json:"inventoryValue"`
	LowStock       []models.Product `json:"lowStock"`
	OutOfStock     int              `json:"outOfStock"`
}

// GetInventoryStats godoc
// @Summary Inventory dashboard
// @Tags Storefront - Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/dashboard [get]
func GetInventoryStats(c *gin.Context) {
	products, err := backend.GetProducts(c.Request.Context(), services.CatalogQuery{})
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch catalog"))
		return
	}

	stats := InventoryStats{TotalItems: len(products), LowStock: []models.Product{}}
	for _, p := range products {
		stock := 0
		if p.Stock != nil {
			stock = *p.Stock
		}
		stats.InventoryValue += p.Price * float64(stock)
		if stock < models.LowStockThreshold {
			stats.LowStock = append(stats.LowStock, p)
		}
		if stock == 0 {
			stats.OutOfStock++
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory stats", stats))
}
