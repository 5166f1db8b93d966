package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"golang.org/x/sync/singleflight"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

// ErrNotFound covers invalid coupon codes and missing products.
var ErrNotFound = errors.New("backend: not found")

// CatalogQuery carries the storefront search inputs. Min and max price are
// kept as raw strings: an empty string means "no bound", and the values are
// passed through to the backend verbatim, inverted ranges included.
type CatalogQuery struct {
	Keyword  string
	MinPrice string
	MaxPrice string
	Sort     string // "asc" | "desc" (by price)
	Category string // server-side category match, used by the spec builder
}

// CheckoutRequest is the order submission payload.
type CheckoutRequest struct {
	Items  []models.CartLine `json:"items"`
	Total  float64           `json:"total"`
	Coupon string            `json:"coupon"`
}

// CheckoutResponse carries the order id assigned by the backend.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// BackendClient wraps every call the storefront makes to the remote
// product/order/auth service. The service itself stays opaque; this client
// only shuttles JSON.
type BackendClient struct {
	baseURL string
	http    *http.Client
	sfg     singleflight.Group // dedupes concurrent detail fetches per id
}

func NewBackendClient(baseURL string, httpClient *http.Client) *BackendClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &BackendClient{baseURL: baseURL, http: httpClient}
}

// GetProducts runs the storefront search. Keyword matching, price bounds and
// price sorting are all delegated to the backend.
func (b *BackendClient) GetProducts(ctx context.Context, q CatalogQuery) ([]models.Product, error) {
	params := url.Values{}
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.MinPrice != "" {
		params.Set("minPrice", q.MinPrice)
	}
	if q.MaxPrice != "" {
		params.Set("maxPrice", q.MaxPrice)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	endpoint := b.baseURL + "/products"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var products []models.Product
	if err := b.doJSON(ctx, http.MethodGet, endpoint, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single catalog entry. Concurrent requests for the
// same id are collapsed into one upstream call.
func (b *BackendClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	v, err, _ := b.sfg.Do(id, func() (interface{}, error) {
		var p models.Product
		if err := b.doJSON(ctx, http.MethodGet, b.baseURL+"/products/"+url.PathEscape(id), nil, &p); err != nil {
			return nil, err
		}
		return &p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Product), nil
}

func (b *BackendClient) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var created models.Product
	if err := b.doJSON(ctx, http.MethodPost, b.baseURL+"/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *BackendClient) UpdateProduct(ctx context.Context, id string, p models.Product) (*models.Product, error) {
	var updated models.Product
	if err := b.doJSON(ctx, http.MethodPatch, b.baseURL+"/products/"+url.PathEscape(id), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (b *BackendClient) DeleteProduct(ctx context.Context, id string) error {
	return b.doJSON(ctx, http.MethodDelete, b.baseURL+"/products/"+url.PathEscape(id), nil, nil)
}

// LookupCoupon resolves a discount code. An unknown code surfaces as
// ErrNotFound so the cart can show the "no such code" message.
func (b *BackendClient) LookupCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	payload := map[string]string{"code": code}
	var coupon models.Coupon
	if err := b.doJSON(ctx, http.MethodPost, b.baseURL+"/products/coupon", payload, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (b *BackendClient) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	var resp CheckoutResponse
	if err := b.doJSON(ctx, http.MethodPost, b.baseURL+"/products/checkout", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (b *BackendClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := b.doJSON(ctx, http.MethodPost, b.baseURL+"/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (b *BackendClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return b.doJSON(ctx, http.MethodPost, b.baseURL+"/auth/register", req, nil)
}

// doJSON sends one request and decodes the JSON reply into out (when out is
// non-nil). Backend-provided error messages are passed through.
func (b *BackendClient) doJSON(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[backend] %s %s returned status %d: %s", method, endpoint, resp.StatusCode, string(raw))
		if msg := upstreamMessage(raw); msg != "" {
			return fmt.Errorf("backend error: %s", msg)
		}
		return fmt.Errorf("backend error: status %d", resp.StatusCode)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func upstreamMessage(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
