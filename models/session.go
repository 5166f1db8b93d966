package models

// Session is the per-profile preference and identity state the pages used to
// keep scattered across local storage keys: theme, admin-mode flag and the
// logged-in identity. It is mirrored to the durable store on every change and
// re-read on an explicit reload trigger.
type Session struct {
	IsDark     bool   `json:"isDark"`
	AdminMode  bool   `json:"adminMode"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty"`
	Token      string `json:"-"` // never serialized back to the UI
}

// DefaultSession matches a fresh browser profile: dark theme, customer mode,
// not logged in.
func DefaultSession() Session {
	return Session{IsDark: true}
}

// ═══════════════════════════════════════════════════════════
// Auth payloads
// ═══════════════════════════════════════════════════════════

// MinPasswordLength is enforced locally before any network call.
const MinPasswordLength = 6

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the auth service's reply; the compact token embeds a role
// claim.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
