package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

// AdminOnly guards the product management routes. The real authorization
// happens on the backend; this gate only keeps privileged actions away from
// profiles whose session is not in admin mode.
func AdminOnly(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := GetProfileID(c)
		sess, err := sessions.Get(c.Request.Context(), profileID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load session"))
			c.Abort()
			return
		}
		if !sess.AdminMode {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Admin mode required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
