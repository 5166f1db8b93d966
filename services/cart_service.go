package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/store"
)

// MinProcessingVisible is the minimum time the checkout flow stays in
// "processing" so the shopper sees the payment run, no matter how fast the
// backend answers.
const MinProcessingVisible = 2500 * time.Millisecond

// Blocked-add reasons, surfaced as user-visible messages rather than faults.
var (
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrColorRequired   = errors.New("please select a color first")
	ErrLineOutOfRange  = errors.New("cart line index out of range")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrCheckoutRunning = errors.New("checkout already in progress")
)

// CouponNotFoundMessage is shown when a code lookup fails for any reason.
const CouponNotFoundMessage = "✗ Coupon code not found"

// OrderClient is the slice of the backend client the cart engine needs.
type OrderClient interface {
	LookupCoupon(ctx context.Context, code string) (*models.Coupon, error)
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error)
}

// CartView is everything the cart drawer renders at once.
type CartView struct {
	Lines     []models.CartLine `json:"lines"`
	Totals    models.Totals     `json:"totals"`
	Coupon    *models.Coupon    `json:"coupon,omitempty"`
	CouponMsg string            `json:"couponMessage,omitempty"`
}

// CartService owns the shopper's in-progress selection: cart lines and
// wishlist in the durable store, the active coupon and checkout state in
// memory only (a coupon does not survive a gateway restart, matching the old
// drawer behavior of losing it on reload).
type CartService struct {
	store      store.ProfileStore
	backend    OrderClient
	minVisible time.Duration

	mu         sync.Mutex
	coupons    map[string]*models.Coupon
	couponMsgs map[string]string
	checkouts  map[string]models.CheckoutStatus
}

func NewCartService(profileStore store.ProfileStore, backend OrderClient, minVisible time.Duration) *CartService {
	if minVisible <= 0 {
		minVisible = MinProcessingVisible
	}
	return &CartService{
		store:      profileStore,
		backend:    backend,
		minVisible: minVisible,
		coupons:    make(map[string]*models.Coupon),
		couponMsgs: make(map[string]string),
		checkouts:  make(map[string]models.CheckoutStatus),
	}
}

// Cart returns the stored lines with totals under the active coupon.
func (s *CartService) Cart(ctx context.Context, profileID string) (CartView, error) {
	lines, err := s.loadCart(ctx, profileID)
	if err != nil {
		return CartView{}, err
	}

	s.mu.Lock()
	coupon := s.coupons[profileID]
	msg := s.couponMsgs[profileID]
	s.mu.Unlock()

	return CartView{
		Lines:     lines,
		Totals:    models.ComputeTotals(lines, coupon),
		Coupon:    coupon,
		CouponMsg: msg,
	}, nil
}

// AddToCart appends a snapshot line. The add is blocked, with no state
// change, when the product is known to be sold out or declares color options
// and none was selected.
func (s *CartService) AddToCart(ctx context.Context, profileID string, product models.Product, selectedColor string) (models.CartLine, error) {
	if product.OutOfStock() {
		return models.CartLine{}, ErrOutOfStock
	}
	if len(product.Colors) > 0 && selectedColor == "" {
		return models.CartLine{}, ErrColorRequired
	}

	lines, err := s.loadCart(ctx, profileID)
	if err != nil {
		return models.CartLine{}, err
	}

	line := models.NewCartLine(product, selectedColor)
	lines = append(lines, line)
	if err := s.store.SetCart(ctx, profileID, lines); err != nil {
		return models.CartLine{}, err
	}
	return line, nil
}

// RemoveLine drops exactly the line at the given position; the remaining
// lines keep their relative order and ids.
func (s *CartService) RemoveLine(ctx context.Context, profileID string, index int) error {
	lines, err := s.loadCart(ctx, profileID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return ErrLineOutOfRange
	}
	lines = append(lines[:index], lines[index+1:]...)
	return s.store.SetCart(ctx, profileID, lines)
}

// ToggleWishlist inserts the product if absent and removes it if present,
// keyed by product id. Returns true when the product ended up on the list.
func (s *CartService) ToggleWishlist(ctx context.Context, profileID string, product models.Product) (bool, error) {
	items, err := s.store.GetWishlist(ctx, profileID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	for i, item := range items {
		if item.ID == product.ID {
			items = append(items[:i], items[i+1:]...)
			return false, s.store.SetWishlist(ctx, profileID, items)
		}
	}
	items = append(items, product)
	return true, s.store.SetWishlist(ctx, profileID, items)
}

func (s *CartService) Wishlist(ctx context.Context, profileID string) ([]models.Product, error) {
	items, err := s.store.GetWishlist(ctx, profileID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return items, err
}

// PruneWishlist removes a deleted product from the profile's wishlist.
func (s *CartService) PruneWishlist(ctx context.Context, profileID, productID string) error {
	items, err := s.store.GetWishlist(ctx, profileID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	return s.store.SetWishlist(ctx, profileID, kept)
}

// ApplyCoupon resolves a code against the backend. Success stores the coupon
// and its confirmation message; any failure clears a previously active
// coupon and records the failure message. A new code always supersedes the
// old one, there is no stacking.
func (s *CartService) ApplyCoupon(ctx context.Context, profileID, code string) (*models.Coupon, error) {
	coupon, err := s.backend.LookupCoupon(ctx, code)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		delete(s.coupons, profileID)
		s.couponMsgs[profileID] = CouponNotFoundMessage
		return nil, err
	}
	coupon.Code = code
	s.coupons[profileID] = coupon
	s.couponMsgs[profileID] = coupon.Message
	return coupon, nil
}

// ClearCoupon forgets the active coupon, as closing the cart drawer used to.
func (s *CartService) ClearCoupon(profileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.coupons, profileID)
	delete(s.couponMsgs, profileID)
}

// ═══════════════════════════════════════════════════════════
// Checkout flow: idle -> processing -> success (or back to idle)
// ═══════════════════════════════════════════════════════════

// StartCheckout posts the cart and begins the processing phase. The flow is
// not cancellable once initiated; the caller polls CheckoutStatus. The state
// never reaches "success" before the minimum visible duration has elapsed,
// even when the backend answers sooner.
func (s *CartService) StartCheckout(ctx context.Context, profileID string) error {
	lines, err := s.loadCart(ctx, profileID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrCartEmpty
	}

	s.mu.Lock()
	if s.checkouts[profileID].State == models.CheckoutProcessing {
		s.mu.Unlock()
		return ErrCheckoutRunning
	}
	coupon := s.coupons[profileID]
	s.checkouts[profileID] = models.CheckoutStatus{State: models.CheckoutProcessing}
	s.mu.Unlock()

	totals := models.ComputeTotals(lines, coupon)
	req := CheckoutRequest{Items: lines, Total: totals.Total}
	if coupon != nil {
		req.Coupon = coupon.Code
	}

	go s.runCheckout(profileID, req)
	return nil
}

func (s *CartService) runCheckout(profileID string, req CheckoutRequest) {
	started := time.Now()

	// not tied to the initiating request: checkout is not cancellable
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := s.backend.Checkout(ctx, req)
	if err != nil {
		log.Printf("[checkout] failed for profile %s: %v", profileID, err)
		s.mu.Lock()
		s.checkouts[profileID] = models.CheckoutStatus{
			State:   models.CheckoutIdle,
			Message: "Checkout failed",
		}
		s.mu.Unlock()
		return
	}

	if remaining := s.minVisible - time.Since(started); remaining > 0 {
		time.Sleep(remaining)
	}

	// order placed: clear the cart atomically before reporting success
	if err := s.store.DeleteCart(ctx, profileID); err != nil {
		log.Printf("[checkout] order %s placed but cart clear failed: %v", resp.OrderID, err)
	}

	s.mu.Lock()
	delete(s.coupons, profileID)
	delete(s.couponMsgs, profileID)
	s.checkouts[profileID] = models.CheckoutStatus{
		State:   models.CheckoutSuccess,
		OrderID: resp.OrderID,
	}
	s.mu.Unlock()
}

// CheckoutStatus reports the current phase of the flow.
func (s *CartService) CheckoutStatus(profileID string) models.CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.checkouts[profileID]
	if !ok {
		return models.CheckoutStatus{State: models.CheckoutIdle}
	}
	return status
}

// AcknowledgeCheckout returns a finished flow to idle, like closing the
// confirmation modal.
func (s *CartService) AcknowledgeCheckout(profileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkouts[profileID].State != models.CheckoutProcessing {
		delete(s.checkouts, profileID)
	}
}

func (s *CartService) loadCart(ctx context.Context, profileID string) ([]models.CartLine, error) {
	lines, err := s.store.GetCart(ctx, profileID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return lines, nil
}
