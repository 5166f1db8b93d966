package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/config"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

// DebounceWindow is the quiet period after the last search input change
// before a backend query is issued.
const DebounceWindow = 300 * time.Millisecond

// CategoryAll is the pseudo-category that disables client-side filtering.
const CategoryAll = "All"

// ProductFetcher is the slice of the backend client the pipeline needs.
type ProductFetcher interface {
	GetProducts(ctx context.Context, q CatalogQuery) ([]models.Product, error)
}

// CatalogSnapshot is what the storefront renders: the category-filtered view
// over the latest fetched result set.
type CatalogSnapshot struct {
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
	Loading    bool             `json:"loading"`
}

// CatalogPipeline turns mutable search inputs into a single outstanding
// backend query. Edits within the debounce window cancel the pending
// request; responses to superseded requests are discarded by sequence
// comparison so a slow early response can never overwrite a newer result.
// Category selection filters the latest result set purely client side and
// never triggers a fetch.
type CatalogPipeline struct {
	fetcher ProductFetcher
	window  time.Duration

	mu       sync.Mutex
	pending  *time.Timer
	query    CatalogQuery
	products []models.Product
	loading  bool
	seq      atomic.Uint64
}

func NewCatalogPipeline(fetcher ProductFetcher, window time.Duration) *CatalogPipeline {
	if window <= 0 {
		window = DebounceWindow
	}
	return &CatalogPipeline{fetcher: fetcher, window: window}
}

// SetQuery records the latest search inputs. A change to keyword, price
// bounds or sort schedules a fetch after the quiet window; a change to the
// selected category alone does not reach the backend at all.
func (p *CatalogPipeline) SetQuery(q CatalogQuery) {
	p.mu.Lock()
	defer p.mu.Unlock()

	backendChanged := q.Keyword != p.query.Keyword ||
		q.MinPrice != p.query.MinPrice ||
		q.MaxPrice != p.query.MaxPrice ||
		q.Sort != p.query.Sort
	p.query = q
	if !backendChanged {
		return
	}

	p.loading = true
	if p.pending != nil {
		p.pending.Stop()
	}
	seq := p.seq.Add(1)
	p.pending = time.AfterFunc(p.window, func() { p.fire(seq) })
}

// Refresh fetches immediately, bypassing the debounce. Used after an admin
// mutation so the storefront reflects the change without waiting for input.
func (p *CatalogPipeline) Refresh(ctx context.Context) error {
	p.mu.Lock()
	q := p.query
	p.loading = true
	p.mu.Unlock()

	seq := p.seq.Add(1)
	q.Category = ""
	products, err := p.fetcher.GetProducts(ctx, q)
	p.apply(seq, products, err)
	return err
}

func (p *CatalogPipeline) fire(seq uint64) {
	p.mu.Lock()
	q := p.query
	p.mu.Unlock()

	ctx, cancel := config.WithTimeout()
	defer cancel()
	// the category tab never reaches the backend
	q.Category = ""
	products, err := p.fetcher.GetProducts(ctx, q)
	p.apply(seq, products, err)
}

// apply installs a fetch result unless a newer request has been issued since.
func (p *CatalogPipeline) apply(seq uint64, products []models.Product, err error) {
	if seq != p.seq.Load() {
		return // superseded, discard
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// re-check under the lock: a newer request may have been issued (and even
	// applied) between the atomic read above and acquiring the mutex
	if seq != p.seq.Load() {
		return
	}
	p.loading = false
	if err != nil {
		// keep the previous list on failure, no retry
		log.Printf("[catalog] fetch failed: %v", err)
		return
	}
	p.products = products
}

// Snapshot returns the current category-filtered view.
func (p *CatalogPipeline) Snapshot() CatalogSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return CatalogSnapshot{
		Products:   FilterByCategory(p.products, p.query.Category),
		Categories: DeriveCategories(p.products),
		Loading:    p.loading,
	}
}

// FilterByCategory returns the order-preserving subsequence of products in
// the selected category; "All" (or blank) passes everything through.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" || category == CategoryAll {
		out := make([]models.Product, len(products))
		copy(out, products)
		return out
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// DeriveCategories builds the category tab list from a result set: the
// unique, sorted, non-blank categories prefixed with "All".
func DeriveCategories(products []models.Product) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		if c := p.Category; strings.TrimSpace(c) != "" {
			seen[c] = struct{}{}
		}
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return append([]string{CategoryAll}, cats...)
}

// ═══════════════════════════════════════════════════════════
// Per-profile pipeline registry
// ═══════════════════════════════════════════════════════════

// CatalogRegistry hands out one pipeline per browser profile, mirroring the
// one-search-state-per-tab behavior of the old pages.
type CatalogRegistry struct {
	fetcher ProductFetcher
	window  time.Duration

	mu        sync.Mutex
	pipelines map[string]*CatalogPipeline
}

func NewCatalogRegistry(fetcher ProductFetcher, window time.Duration) *CatalogRegistry {
	return &CatalogRegistry{
		fetcher:   fetcher,
		window:    window,
		pipelines: make(map[string]*CatalogPipeline),
	}
}

func (r *CatalogRegistry) For(profileID string) *CatalogPipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pipelines[profileID]
	if !ok {
		p = NewCatalogPipeline(r.fetcher, r.window)
		r.pipelines[profileID] = p
	}
	return p
}
