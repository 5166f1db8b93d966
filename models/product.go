package models

import "strings"

// DefaultStock is assumed when the backend omits a stock count.
const DefaultStock = 10

// DefaultCategory replaces a blank category on create/update.
const DefaultCategory = "General"

// LowStockThreshold marks products that need restocking on the dashboard.
const LowStockThreshold = 5

// ═══════════════════════════════════════════════════════════
// Catalog Product (mirrored from the remote product service)
// ═══════════════════════════════════════════════════════════

// Product mirrors one catalog entry from the remote product service.
// The gateway never invents or destroys a product record, only mirrors it.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Colors      []string `json:"colors,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
	Stock       *int     `json:"stock,omitempty"`

	// Hardware spec sheet fields, free text, filled per category
	Socket       string `json:"socket,omitempty"`
	CPUSeries    string `json:"cpuSeries,omitempty"`
	VRAM         string `json:"vram,omitempty"`
	Wattage      string `json:"wattage,omitempty"`
	CudaCores    *int   `json:"cudaCores,omitempty"`
	RewardPoints int    `json:"points,omitempty"`
}

// StockOrDefault returns the known stock count, or DefaultStock when the
// backend omitted the field.
func (p Product) StockOrDefault() int {
	if p.Stock == nil {
		return DefaultStock
	}
	return *p.Stock
}

// OutOfStock reports whether the product is known to be sold out. An absent
// stock count never blocks an add-to-cart.
func (p Product) OutOfStock() bool {
	return p.Stock != nil && *p.Stock <= 0
}

// GalleryImages returns the primary image followed by the extra gallery
// shots, with blank entries dropped.
func (p Product) GalleryImages() []string {
	images := make([]string, 0, len(p.Gallery)+1)
	for _, img := range append([]string{p.Image}, p.Gallery...) {
		if strings.TrimSpace(img) != "" {
			images = append(images, img)
		}
	}
	return images
}

// ═══════════════════════════════════════════════════════════
// Request Models (admin create / edit)
// ═══════════════════════════════════════════════════════════

// ProductRequest is the admin form payload for create and edit. Numeric and
// list fields arrive as strings from the form and are normalized before the
// payload is forwarded upstream.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Colors      string  `json:"colors"`  // comma separated
	Gallery     string  `json:"gallery"` // comma separated
	Brand       string  `json:"brand"`

	Socket    string `json:"socket"`
	CPUSeries string `json:"cpuSeries"`
	VRAM      string `json:"vram"`
	Wattage   string `json:"wattage"`
	CudaCores *int   `json:"cudaCores"`
	Points    int    `json:"points"`
}

// Normalize applies the same cleanup the admin form used to do before
// submitting: blank category falls back to the default label, a missing image
// gets a placeholder, and comma separated lists are split and trimmed.
func (r ProductRequest) Normalize() Product {
	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = DefaultCategory
	}

	image := strings.TrimSpace(r.Image)
	if image == "" {
		image = "https://placehold.co/600x400?text=" + strings.ReplaceAll(r.Name, " ", "+")
	}

	stock := r.Stock
	return Product{
		Name:         strings.TrimSpace(r.Name),
		Price:        r.Price,
		Stock:        &stock,
		Description:  r.Description,
		Category:     category,
		Image:        image,
		Colors:       splitList(r.Colors),
		Gallery:      splitList(r.Gallery),
		Brand:        strings.TrimSpace(r.Brand),
		Socket:       strings.TrimSpace(r.Socket),
		CPUSeries:    strings.TrimSpace(r.CPUSeries),
		VRAM:         strings.TrimSpace(r.VRAM),
		Wattage:      strings.TrimSpace(r.Wattage),
		CudaCores:    r.CudaCores,
		RewardPoints: r.Points,
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
