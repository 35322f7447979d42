package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// GetMe godoc
// @Summary Get current signed-in user
// @Description Returns the session's user. Must be routed behind RequireSignedIn.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 401 {object} models.ApiResponse "Not signed in"
// @Router /auth/me [get]
func (ctl *Controller) GetMe(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	user, signedIn := s.Auth.CurrentUser()
	if !signedIn {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not signed in"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Authenticated", user))
}
