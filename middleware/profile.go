package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileCookie identifies one browser profile; all cart/wishlist/session
// state is keyed by it, the way local storage used to scope state to a
// browser profile.
const ProfileCookie = "shop_profile"

const profileCookieMaxAge = 60 * 60 * 24 * 365

// Profile assigns a stable profile id to every visitor, minting one on first
// contact.
func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(ProfileCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ProfileCookie, id, profileCookieMaxAge, "/", "", false, true)
		}
		c.Set("profileID", id)
		c.Next()
	}
}

// GetProfileID reads the profile id set by the Profile middleware.
func GetProfileID(c *gin.Context) string {
	id, _ := c.Get("profileID")
	s, _ := id.(string)
	return s
}
