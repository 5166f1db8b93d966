package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

// Logout godoc
// @Summary Clear the profile's identity
// @Description Drops token, role and name; the theme preference survives.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	sess, err := sessions.ClearIdentity(c.Request.Context(), middleware.GetProfileID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear session"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", sess))
}
