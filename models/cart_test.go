package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func line(category string, price float64) CartLine {
	return CartLine{Product: Product{Category: category, Price: price}}
}

func TestComputeTotalsNoCoupon(t *testing.T) {
	totals := ComputeTotals([]CartLine{line("CPU", 1000), line("RAM", 500)}, nil)
	assert.Equal(t, 1500.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 1500.0, totals.Total)
}

func TestComputeTotalsCategoryCoupon(t *testing.T) {
	coupon := &Coupon{Category: "CPU", Discount: 10}
	totals := ComputeTotals([]CartLine{line("CPU", 1000), line("RAM", 500)}, coupon)
	assert.Equal(t, 1500.0, totals.Subtotal)
	assert.Equal(t, 100.0, totals.Discount)
	assert.Equal(t, 1400.0, totals.Total)
}

func TestComputeTotalsAllScopeCoupon(t *testing.T) {
	coupon := &Coupon{Category: CouponScopeAll, Discount: 50}
	totals := ComputeTotals([]CartLine{line("GPU", 2000)}, coupon)
	assert.Equal(t, 1000.0, totals.Total)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, &Coupon{Category: CouponScopeAll, Discount: 50})
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Total)
}

func TestCouponAppliesTo(t *testing.T) {
	assert.True(t, Coupon{Category: CouponScopeAll}.AppliesTo("GPU"))
	assert.True(t, Coupon{Category: "GPU"}.AppliesTo("GPU"))
	assert.False(t, Coupon{Category: "GPU"}.AppliesTo("CPU"))
}

func TestNewCartLineDefaultsColor(t *testing.T) {
	l := NewCartLine(Product{ID: "cpu-1"}, "")
	assert.Equal(t, DefaultColor, l.SelectedColor)
	assert.NotZero(t, l.CartID)

	l = NewCartLine(Product{ID: "gpu-1"}, "White")
	assert.Equal(t, "White", l.SelectedColor)
}
