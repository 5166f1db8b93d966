package session_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
)

var sessions *services.SessionService

func Init(sessionService *services.SessionService) {
	sessions = sessionService
}

// GetSession godoc
// @Summary Current profile preferences and identity
// @Tags Storefront - Session
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /session [get]
func GetSession(c *gin.Context) {
	sess, err := sessions.Get(c.Request.Context(), middleware.GetProfileID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load session"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session", sess))
}

// UpdateSession godoc
// @Summary Toggle theme or admin mode
// @Tags Storefront - Session
// @Accept json
// @Produce json
// @Param patch body services.SessionPatch true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Router /session [patch]
func UpdateSession(c *gin.Context) {
	var patch services.SessionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	sess, err := sessions.Update(c.Request.Context(), middleware.GetProfileID(c), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update session"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session updated", sess))
}

// ReloadSession godoc
// @Summary Re-read the session from the durable store
// @Description The defined reload trigger: the UI calls this on visibility regain or a cross-tab storage notification.
// @Tags Storefront - Session
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /session/reload [post]
func ReloadSession(c *gin.Context) {
	sess, err := sessions.Reload(c.Request.Context(), middleware.GetProfileID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload session"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session reloaded", sess))
}
