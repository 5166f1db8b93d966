// Package store is the durable per-profile key-value storage behind carts,
// wishlists and session preferences. It is the gateway's stand-in for the
// browser's local storage: writes happen on every mutation and the stored
// lists are the sole source of truth across reloads of one profile.
package store

import (
	"context"
	"errors"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

// ErrNotFound is returned when a profile has no stored value for a key.
var ErrNotFound = errors.New("store: not found")

// ProfileStore persists the state of one browser profile. Implementations
// must treat each call as atomic from the caller's perspective.
type ProfileStore interface {
	GetCart(ctx context.Context, profileID string) ([]models.CartLine, error)
	SetCart(ctx context.Context, profileID string, lines []models.CartLine) error
	DeleteCart(ctx context.Context, profileID string) error

	GetWishlist(ctx context.Context, profileID string) ([]models.Product, error)
	SetWishlist(ctx context.Context, profileID string, items []models.Product) error

	GetSession(ctx context.Context, profileID string) (models.Session, error)
	SetSession(ctx context.Context, profileID string, s models.Session) error
	DeleteSession(ctx context.Context, profileID string) error
}
