package models

import "time"

// DefaultColor is recorded on a cart line when the product has no color
// options to choose from.
const DefaultColor = "Standard"

// ═══════════════════════════════════════════════════════════
// Cart
// ═══════════════════════════════════════════════════════════

// CartLine is a full product snapshot taken at add-to-cart time plus the
// shopper's color selection. Lines are immutable once created; changing the
// selection means removing and re-adding. Quantity is implicitly 1 per line.
type CartLine struct {
	Product
	SelectedColor string `json:"selectedColor"`
	CartID        int64  `json:"cartId"`
}

// NewCartLine snapshots a product into a cart line. The line id is
// timestamp-based; it is only used for list keys and removal, not as a
// globally unique id.
func NewCartLine(p Product, selectedColor string) CartLine {
	if selectedColor == "" {
		selectedColor = DefaultColor
	}
	return CartLine{
		Product:       p,
		SelectedColor: selectedColor,
		CartID:        time.Now().UnixMilli(),
	}
}

// ═══════════════════════════════════════════════════════════
// Coupon
// ═══════════════════════════════════════════════════════════

// CouponScopeAll makes a coupon apply to every cart line regardless of
// category.
const CouponScopeAll = "all"

// Coupon is a scoped percentage discount resolved by code lookup against the
// backend. It lives for one checkout session only and is never persisted.
type Coupon struct {
	Code     string `json:"code"`
	Category string `json:"category"` // "all" or one category
	Discount int    `json:"discount"` // percent, 0–100
	Message  string `json:"message"`
}

// AppliesTo reports whether the coupon's scope covers a line in the given
// category.
func (c Coupon) AppliesTo(category string) bool {
	return c.Category == CouponScopeAll || c.Category == category
}

// Totals is the derived amount due for a cart under an optional coupon.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// ComputeTotals sums the cart and applies the active coupon to matching
// lines. Discount can never exceed subtotal because each line's own discount
// is capped at 100% of that line's price.
func ComputeTotals(lines []CartLine, coupon *Coupon) Totals {
	var t Totals
	for _, line := range lines {
		t.Subtotal += line.Price
		if coupon != nil && coupon.AppliesTo(line.Category) {
			t.Discount += line.Price * float64(coupon.Discount) / 100
		}
	}
	t.Total = t.Subtotal - t.Discount
	return t
}

// ═══════════════════════════════════════════════════════════
// Checkout
// ═══════════════════════════════════════════════════════════

// CheckoutState is the visible phase of the checkout flow.
type CheckoutState string

const (
	CheckoutIdle       CheckoutState = "idle"
	CheckoutProcessing CheckoutState = "processing"
	CheckoutSuccess    CheckoutState = "success"
)

// CheckoutStatus is what the cart view polls while an order is in flight.
type CheckoutStatus struct {
	State   CheckoutState `json:"state"`
	OrderID string        `json:"orderId,omitempty"`
	Message string        `json:"message,omitempty"`
}
