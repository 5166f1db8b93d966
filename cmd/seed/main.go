// Seeds the upstream product service with a demo hardware catalog.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/config"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

var demoProducts = []models.ProductRequest{
	{
		Name:        "Ryzen 7 9800X3D",
		Price:       479,
		Stock:       12,
		Description: "8-core gaming CPU with 3D V-Cache",
		Category:    "CPU",
		Brand:       "AMD",
		Socket:      "AM5",
		CPUSeries:   "Ryzen 7",
		Points:      48,
	},
	{
		Name:        "Core Ultra 7 265K",
		Price:       394,
		Stock:       9,
		Description: "20-core desktop processor",
		Category:    "CPU",
		Brand:       "Intel",
		Socket:      "LGA1851",
		CPUSeries:   "Core Ultra 7",
		Points:      39,
	},
	{
		Name:        "GeForce RTX 4070 Super",
		Price:       599,
		Stock:       6,
		Description: "12GB GDDR6X graphics card",
		Category:    "GPU",
		Brand:       "NVIDIA",
		VRAM:        "12GB",
		CudaCores:   intPtr(7168),
		Colors:      "Black, White",
		Points:      60,
	},
	{
		Name:        "Radeon RX 7800 XT",
		Price:       499,
		Stock:       0,
		Description: "16GB GDDR6 graphics card",
		Category:    "GPU",
		Brand:       "AMD",
		VRAM:        "16GB",
		Points:      50,
	},
	{
		Name:        "Vengeance DDR5-6000 32GB",
		Price:       104,
		Stock:       25,
		Description: "2x16GB CL30 kit",
		Category:    "RAM",
		Brand:       "Corsair",
		Colors:      "Black, White",
		Points:      10,
	},
	{
		Name:        "ROG Strix B650E-F",
		Price:       219,
		Stock:       7,
		Description: "ATX AM5 motherboard with WiFi 6E",
		Category:    "Mainboard",
		Brand:       "ASUS",
		Socket:      "AM5",
		Points:      22,
	},
	{
		Name:        "990 Pro 2TB NVMe",
		Price:       169,
		Stock:       18,
		Description: "PCIe 4.0 SSD, 7450MB/s reads",
		Category:    "Storage",
		Brand:       "Samsung",
		Points:      17,
	},
	{
		Name:        "RM850x Shift",
		Price:       139,
		Stock:       11,
		Description: "850W 80+ Gold fully modular PSU",
		Category:    "PSU",
		Brand:       "Corsair",
		Wattage:     "850W",
		Points:      14,
	},
	{
		Name:        "North XL Mesh",
		Price:       119,
		Stock:       4,
		Description: "Full tower case with walnut front",
		Category:    "Case",
		Brand:       "Fractal Design",
		Colors:      "Charcoal, Chalk",
		Points:      12,
	},
}

func intPtr(v int) *int { return &v }

func main() {
	_ = godotenv.Load()
	config.InitBackend()

	backend := services.NewBackendClient(config.BackendURL, config.BackendHTTP)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	created := 0
	for _, req := range demoProducts {
		product, err := backend.CreateProduct(ctx, req.Normalize())
		if err != nil {
			log.Printf("❌ Failed to seed %q: %v", req.Name, err)
			continue
		}
		log.Printf("✅ Seeded %s (%s)", product.Name, product.ID)
		created++
	}

	log.Printf("🚀 Seeding done: %d/%d products created", created, len(demoProducts))
}
