package auth_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
)

// Register godoc
// @Summary Create an account on the remote auth service
// @Description Password length is checked locally before any network call.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body models.RegisterRequest true "Name, email and password"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Validation failed"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if len(req.Password) < models.MinPasswordLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			fmt.Sprintf("Password must be at least %d characters", models.MinPasswordLength)))
		return
	}

	if err := backend.Register(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Registration failed"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created, please log in", nil))
}
