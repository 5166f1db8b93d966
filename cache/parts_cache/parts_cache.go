package parts_cache

import (
	"sync"
	"time"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

const TTL = 5 * time.Minute

// ── Build-planner slot cache ─────────────────────────────────────────────────
// Stores the part candidates per build slot. Every visitor sees the same
// lists, so one process-wide cache is enough; admin product mutations
// invalidate the whole thing.

type slotEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	slotMu    sync.RWMutex
	slotCache = map[string]*slotEntry{}
)

func Get(slot string) ([]models.Product, bool) {
	slotMu.RLock()
	defer slotMu.RUnlock()
	entry, ok := slotCache[slot]
	if ok && time.Since(entry.fetchedAt) < TTL {
		return entry.products, true
	}
	return nil, false
}

func Set(slot string, products []models.Product) {
	slotMu.Lock()
	defer slotMu.Unlock()
	slotCache[slot] = &slotEntry{
		products:  products,
		fetchedAt: time.Now(),
	}
}

func Invalidate() {
	slotMu.Lock()
	defer slotMu.Unlock()
	slotCache = map[string]*slotEntry{}
}
