package cart_controller

import (
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

var (
	carts   *services.CartService
	backend *services.BackendClient
)

func Init(cartService *services.CartService, client *services.BackendClient) {
	carts = cartService
	backend = client
}
