package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// Logout godoc
// @Summary Logout user
// @Description Signs the session's user out. Cart and wishlist stay with the session.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.AuthState}
// @Router /auth/logout [post]
func (ctl *Controller) Logout(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	s.Auth.Logout(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", s.Auth.State()))
}
