// @title Sarawut Shop Gateway API
// @version 1.0
// @description Storefront gateway for the Sarawut computer hardware shop
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/config"
	admin_product_controller "github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/admin/product_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/auth_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/cart_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/dashboard_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/product_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/session_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/controllers/storefront/wishlist_controller"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/routes/admin_routes"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/routes/storefront_routes"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Product service connection
	config.InitBackend()
	// Redis connection (profile carts, wishlists, sessions)
	config.ConnectRedis()

	profileStore := store.NewRedisStore(config.RedisClient)
	backend := services.NewBackendClient(config.BackendURL, config.BackendHTTP)

	pipelines := services.NewCatalogRegistry(backend, services.DebounceWindow)
	carts := services.NewCartService(profileStore, backend, services.MinProcessingVisible)
	sessions := services.NewSessionService(profileStore)

	// Wire controllers
	product_controller.Init(backend, pipelines)
	dashboard_controller.Init(backend)
	cart_controller.Init(carts, backend)
	wishlist_controller.Init(carts, backend)
	session_controller.Init(sessions)
	auth_controller.Init(backend, sessions)
	admin_product_controller.Init(backend, carts, pipelines)
	log.Println("✅ Services initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Every route is scoped to a browser profile cookie
	api := router.Group("/api/v1")
	api.Use(middleware.Profile())

	storefront_routes.SetupProductRoutes(api, sessions)
	storefront_routes.SetupCartRoutes(api)
	storefront_routes.SetupSessionRoutes(api)

	admin_routes.SetupAdminRoutes(api, sessions)
	log.Println("✅ Admin routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Printf("🚀 Gateway is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
