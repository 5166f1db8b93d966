package store

import (
	"context"
	"sync"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

// MemoryStore is an in-process ProfileStore used by tests and by local runs
// without Redis. State is lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	carts     map[string][]models.CartLine
	wishlists map[string][]models.Product
	sessions  map[string]models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:     make(map[string][]models.CartLine),
		wishlists: make(map[string][]models.Product),
		sessions:  make(map[string]models.Session),
	}
}

func (s *MemoryStore) GetCart(_ context.Context, profileID string) ([]models.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines, ok := s.carts[profileID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemoryStore) SetCart(_ context.Context, profileID string, lines []models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]models.CartLine, len(lines))
	copy(cp, lines)
	s.carts[profileID] = cp
	return nil
}

func (s *MemoryStore) DeleteCart(_ context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, profileID)
	return nil
}

func (s *MemoryStore) GetWishlist(_ context.Context, profileID string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.wishlists[profileID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]models.Product, len(items))
	copy(out, items)
	return out, nil
}

func (s *MemoryStore) SetWishlist(_ context.Context, profileID string, items []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]models.Product, len(items))
	copy(cp, items)
	s.wishlists[profileID] = cp
	return nil
}

func (s *MemoryStore) GetSession(_ context.Context, profileID string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[profileID]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *MemoryStore) SetSession(_ context.Context, profileID string, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[profileID] = sess
	return nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, profileID)
	return nil
}
