package services

import (
	"context"
	"errors"
	"sync"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/store"
)

// SessionPatch is a partial preference update; nil fields are left alone.
type SessionPatch struct {
	IsDark    *bool `json:"isDark"`
	AdminMode *bool `json:"adminMode"`
}

// SessionService replaces the old scattered local-storage reads with one
// explicit per-profile session object. Every change is mirrored to the
// durable store immediately; Reload is the defined trigger for picking up
// out-of-band changes (the old focus/storage event handlers).
type SessionService struct {
	store store.ProfileStore

	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewSessionService(profileStore store.ProfileStore) *SessionService {
	return &SessionService{
		store:    profileStore,
		sessions: make(map[string]models.Session),
	}
}

// Get returns the cached session, loading it from the store on first use.
func (s *SessionService) Get(ctx context.Context, profileID string) (models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[profileID]
	s.mu.RUnlock()
	if ok {
		return sess, nil
	}
	return s.Reload(ctx, profileID)
}

// Reload re-reads the session from the durable store, dropping the in-memory
// mirror. A profile with no stored session gets the defaults.
func (s *SessionService) Reload(ctx context.Context, profileID string) (models.Session, error) {
	sess, err := s.store.GetSession(ctx, profileID)
	if errors.Is(err, store.ErrNotFound) {
		sess = models.DefaultSession()
	} else if err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	s.sessions[profileID] = sess
	s.mu.Unlock()
	return sess, nil
}

// Update applies a preference patch and persists the result.
func (s *SessionService) Update(ctx context.Context, profileID string, patch SessionPatch) (models.Session, error) {
	sess, err := s.Get(ctx, profileID)
	if err != nil {
		return models.Session{}, err
	}

	if patch.IsDark != nil {
		sess.IsDark = *patch.IsDark
	}
	if patch.AdminMode != nil {
		sess.AdminMode = *patch.AdminMode
	}
	return sess, s.put(ctx, profileID, sess)
}

// SetIdentity records a successful login. Admin mode follows the role claim.
func (s *SessionService) SetIdentity(ctx context.Context, profileID, name, role, token string) (models.Session, error) {
	sess, err := s.Get(ctx, profileID)
	if err != nil {
		return models.Session{}, err
	}
	sess.IsLoggedIn = true
	sess.Name = name
	sess.Role = role
	sess.Token = token
	sess.AdminMode = role == "admin"
	return sess, s.put(ctx, profileID, sess)
}

// ClearIdentity logs the profile out, keeping the theme preference.
func (s *SessionService) ClearIdentity(ctx context.Context, profileID string) (models.Session, error) {
	sess, err := s.Get(ctx, profileID)
	if err != nil {
		return models.Session{}, err
	}
	cleared := models.DefaultSession()
	cleared.IsDark = sess.IsDark
	return cleared, s.put(ctx, profileID, cleared)
}

func (s *SessionService) put(ctx context.Context, profileID string, sess models.Session) error {
	if err := s.store.SetSession(ctx, profileID, sess); err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[profileID] = sess
	s.mu.Unlock()
	return nil
}
