package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/store"
)

func boolPtr(v bool) *bool { return &v }

func TestSessionDefaultsOnFirstUse(t *testing.T) {
	svc := NewSessionService(store.NewMemoryStore())

	sess, err := svc.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, sess.IsDark, "dark theme is the default")
	assert.False(t, sess.IsLoggedIn)
	assert.False(t, sess.AdminMode)
}

func TestSessionUpdatePatchesOnlyGivenFields(t *testing.T) {
	svc := NewSessionService(store.NewMemoryStore())
	ctx := context.Background()

	sess, err := svc.Update(ctx, "p1", SessionPatch{IsDark: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, sess.IsDark)
	assert.False(t, sess.AdminMode)

	sess, err = svc.Update(ctx, "p1", SessionPatch{AdminMode: boolPtr(true)})
	require.NoError(t, err)
	assert.False(t, sess.IsDark, "untouched field keeps its value")
	assert.True(t, sess.AdminMode)
}

func TestSessionIdentityLifecycle(t *testing.T) {
	svc := NewSessionService(store.NewMemoryStore())
	ctx := context.Background()

	sess, err := svc.SetIdentity(ctx, "p1", "Sarawut", "admin", "tok-123")
	require.NoError(t, err)
	assert.True(t, sess.IsLoggedIn)
	assert.Equal(t, "Sarawut", sess.Name)
	assert.True(t, sess.AdminMode, "admin role enables admin mode")

	_, err = svc.Update(ctx, "p1", SessionPatch{IsDark: boolPtr(false)})
	require.NoError(t, err)

	sess, err = svc.ClearIdentity(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, sess.IsLoggedIn)
	assert.Empty(t, sess.Name)
	assert.False(t, sess.AdminMode)
	assert.False(t, sess.IsDark, "logout keeps the theme preference")
}

func TestSessionNonAdminLogin(t *testing.T) {
	svc := NewSessionService(store.NewMemoryStore())

	sess, err := svc.SetIdentity(context.Background(), "p1", "somchai", "user", "tok")
	require.NoError(t, err)
	assert.True(t, sess.IsLoggedIn)
	assert.False(t, sess.AdminMode)
}

func TestSessionReloadPicksUpStoreChanges(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewSessionService(mem)
	ctx := context.Background()

	_, err := svc.Get(ctx, "p1")
	require.NoError(t, err)

	// another gateway instance writes a session behind our back
	changed := models.DefaultSession()
	changed.IsLoggedIn = true
	changed.Name = "elsewhere"
	require.NoError(t, mem.SetSession(ctx, "p1", changed))

	// the cached mirror still serves the old value
	sess, err := svc.Get(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, sess.IsLoggedIn)

	sess, err = svc.Reload(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, sess.IsLoggedIn)
	assert.Equal(t, "elsewhere", sess.Name)
}
