package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

type fakeFetcher struct {
	mu      sync.Mutex
	queries []CatalogQuery
	results [][]models.Product
	errs    []error
	block   chan struct{} // when set, call n blocks until closed (n from blockCall)

	blockCall int
}

func (f *fakeFetcher) GetProducts(ctx context.Context, q CatalogQuery) ([]models.Product, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	n := len(f.queries)
	block := f.block
	blockCall := f.blockCall
	var products []models.Product
	var err error
	if len(f.results) > 0 {
		products = f.results[(n-1)%len(f.results)]
	}
	if len(f.errs) > 0 {
		err = f.errs[(n-1)%len(f.errs)]
	}
	f.mu.Unlock()

	if block != nil && n == blockCall {
		<-block
	}
	return products, err
}

func (f *fakeFetcher) calls() []CatalogQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]CatalogQuery, len(f.queries))
	copy(out, f.queries)
	return out
}

func hardware(names ...string) []models.Product {
	out := make([]models.Product, 0, len(names))
	for _, n := range names {
		out = append(out, models.Product{ID: n, Name: n, Category: "CPU"})
	}
	return out
}

func TestSetQueryDebouncesRapidEdits(t *testing.T) {
	fetcher := &fakeFetcher{results: [][]models.Product{hardware("ryzen")}}
	p := NewCatalogPipeline(fetcher, 50*time.Millisecond)

	// simulate typing: each keystroke lands inside the quiet window
	p.SetQuery(CatalogQuery{Keyword: "r"})
	time.Sleep(15 * time.Millisecond)
	p.SetQuery(CatalogQuery{Keyword: "ry"})
	time.Sleep(15 * time.Millisecond)
	p.SetQuery(CatalogQuery{Keyword: "ryzen"})

	assert.True(t, p.Snapshot().Loading)

	time.Sleep(150 * time.Millisecond)

	calls := fetcher.calls()
	require.Len(t, calls, 1, "only the settled query should reach the backend")
	assert.Equal(t, "ryzen", calls[0].Keyword)
	assert.False(t, p.Snapshot().Loading)
	assert.Equal(t, hardware("ryzen"), p.Snapshot().Products)
}

func TestCategoryChangeNeverFetches(t *testing.T) {
	fetcher := &fakeFetcher{results: [][]models.Product{{
		{ID: "1", Name: "Ryzen", Category: "CPU"},
		{ID: "2", Name: "RTX", Category: "GPU"},
	}}}
	p := NewCatalogPipeline(fetcher, 10*time.Millisecond)
	require.NoError(t, p.Refresh(context.Background()))
	require.Len(t, fetcher.calls(), 1)

	// switching the tab is a pure client-side filter
	q := CatalogQuery{Category: "GPU"}
	p.SetQuery(q)
	time.Sleep(50 * time.Millisecond)

	assert.Len(t, fetcher.calls(), 1, "category selection must not hit the backend")
	snap := p.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "RTX", snap.Products[0].Name)
}

func TestCategoryStrippedFromBackendQuery(t *testing.T) {
	fetcher := &fakeFetcher{}
	p := NewCatalogPipeline(fetcher, 10*time.Millisecond)

	p.SetQuery(CatalogQuery{Keyword: "ddr5", Category: "RAM"})
	time.Sleep(60 * time.Millisecond)

	calls := fetcher.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "ddr5", calls[0].Keyword)
	assert.Empty(t, calls[0].Category)
}

func TestStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	fetcher := &fakeFetcher{
		results: [][]models.Product{hardware("stale"), hardware("fresh")},
		block:   release,
		// the first request hangs until released, after the second finished
		blockCall: 1,
	}
	p := NewCatalogPipeline(fetcher, time.Hour) // debounce unused here

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = p.Refresh(context.Background())
	}()

	// wait until the slow request is in flight, then supersede it
	require.Eventually(t, func() bool { return len(fetcher.calls()) == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Refresh(context.Background()))
	assert.Equal(t, hardware("fresh"), p.Snapshot().Products)

	close(release)
	wg.Wait()

	assert.Equal(t, hardware("fresh"), p.Snapshot().Products,
		"a superseded response must not overwrite the newer result")
}

func TestLateResponseLosingLockRaceIsDiscarded(t *testing.T) {
	p := NewCatalogPipeline(&fakeFetcher{}, time.Hour)

	staleSeq := p.seq.Add(1)

	// hold the state lock so the stale response passes its first sequence
	// check but cannot install yet
	p.mu.Lock()

	applied := make(chan struct{})
	go func() {
		p.apply(staleSeq, hardware("stale"), nil)
		close(applied)
	}()

	// let the goroutine reach the lock
	time.Sleep(50 * time.Millisecond)

	// a newer request is issued and its result installed while the stale
	// response is still parked on the lock
	p.seq.Add(1)
	p.products = hardware("fresh")
	p.mu.Unlock()

	<-applied

	assert.Equal(t, hardware("fresh"), p.Snapshot().Products,
		"a response that lost the lock race to a newer one must not install last")
}

func TestFetchFailureKeepsPreviousList(t *testing.T) {
	fetcher := &fakeFetcher{
		results: [][]models.Product{hardware("ryzen"), nil},
		errs:    []error{nil, errors.New("upstream down")},
	}
	p := NewCatalogPipeline(fetcher, 10*time.Millisecond)

	require.NoError(t, p.Refresh(context.Background()))
	require.Error(t, p.Refresh(context.Background()))

	snap := p.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, hardware("ryzen"), snap.Products)
}

func TestDeriveCategories(t *testing.T) {
	products := []models.Product{
		{Category: "GPU"},
		{Category: "CPU"},
		{Category: "GPU"},
		{Category: "  "},
		{Category: ""},
		{Category: "RAM"},
	}
	assert.Equal(t, []string{"All", "CPU", "GPU", "RAM"}, DeriveCategories(products))
	assert.Equal(t, []string{"All"}, DeriveCategories(nil))
}

func TestFilterByCategory(t *testing.T) {
	products := []models.Product{
		{ID: "1", Category: "CPU"},
		{ID: "2", Category: "GPU"},
		{ID: "3", Category: "CPU"},
	}

	all := FilterByCategory(products, CategoryAll)
	assert.Equal(t, products, all)

	cpus := FilterByCategory(products, "CPU")
	require.Len(t, cpus, 2)
	assert.Equal(t, "1", cpus[0].ID)
	assert.Equal(t, "3", cpus[1].ID)

	assert.Empty(t, FilterByCategory(products, "PSU"))
}

func TestRegistryIsolatesProfiles(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := NewCatalogRegistry(fetcher, 10*time.Millisecond)

	a := r.For("profile-a")
	b := r.For("profile-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, r.For("profile-a"))
}
