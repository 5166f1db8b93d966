package product_controller

import (
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

var (
	backend   *services.BackendClient
	pipelines *services.CatalogRegistry
)

// Init wires the storefront product handlers to the backend client and the
// per-profile pipeline registry.
func Init(client *services.BackendClient, registry *services.CatalogRegistry) {
	backend = client
	pipelines = registry
}
