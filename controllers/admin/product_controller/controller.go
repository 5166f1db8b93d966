package product_controller

import (
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

var (
	backend   *services.BackendClient
	carts     *services.CartService
	pipelines *services.CatalogRegistry
)

// Init wires the admin product handlers. Mutations go straight through to
// the backend; the profile's catalog pipeline is refreshed afterwards so the
// storefront reflects the change immediately.
func Init(client *services.BackendClient, cartService *services.CartService, registry *services.CatalogRegistry) {
	backend = client
	carts = cartService
	pipelines = registry
}
