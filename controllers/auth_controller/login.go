package auth_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/utils"
)

var (
	backend  *services.BackendClient
	sessions *services.SessionService
)

func Init(client *services.BackendClient, sessionService *services.SessionService) {
	backend = client
	sessions = sessionService
}

// Login godoc
// @Summary Log in against the remote auth service
// @Description Forwards the credentials, stores the issued token on the session and derives the role from the token's role claim.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Login failed"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	resp, err := backend.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	claims, err := utils.DecodeToken(resp.AccessToken)
	if err != nil {
		log.Printf("[auth] token decode failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Auth service returned an unusable token"))
		return
	}

	role := claims.Role
	if role == "" {
		role = "user"
	}
	name := claims.Name
	if name == "" {
		// fall back to the mailbox name for display
		name = strings.SplitN(req.Email, "@", 2)[0]
	}

	sess, err := sessions.SetIdentity(c.Request.Context(), middleware.GetProfileID(c), name, role, resp.AccessToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to store session"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Welcome back, "+name, sess))
}
