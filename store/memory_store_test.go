package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

func TestMemoryStoreCartRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.GetCart(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)

	lines := []models.CartLine{
		{Product: models.Product{ID: "cpu-1", Price: 1000}, SelectedColor: "Standard", CartID: 1},
	}
	require.NoError(t, s.SetCart(ctx, "p1", lines))

	got, err := s.GetCart(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, lines, got)

	// the stored slice is insulated from caller mutation
	got[0].ID = "mutated"
	again, err := s.GetCart(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "cpu-1", again[0].ID)

	require.NoError(t, s.DeleteCart(ctx, "p1"))
	_, err = s.GetCart(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreWishlistRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.GetWishlist(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)

	items := []models.Product{{ID: "gpu-1", Name: "RTX"}}
	require.NoError(t, s.SetWishlist(ctx, "p1", items))

	got, err := s.GetWishlist(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	// an emptied list stays readable, unlike a never-written one
	require.NoError(t, s.SetWishlist(ctx, "p1", nil))
	got, err = s.GetWishlist(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStoreSessionRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.GetSession(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)

	sess := models.DefaultSession()
	sess.IsLoggedIn = true
	sess.Token = "tok-123"
	require.NoError(t, s.SetSession(ctx, "p1", sess))

	got, err := s.GetSession(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
	assert.Equal(t, "tok-123", got.Token)

	require.NoError(t, s.DeleteSession(ctx, "p1"))
	_, err = s.GetSession(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreProfileIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SetCart(ctx, "alice", []models.CartLine{{CartID: 1}}))

	_, err := s.GetCart(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}
