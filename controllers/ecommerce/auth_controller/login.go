package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"go.uber.org/zap"
)

type Controller struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Controller {
	return &Controller{logger: logger}
}

// Login godoc
// @Summary Sign in
// @Description Demo sign-in: any email with a non-empty password signs in the demo account after a short delay.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /auth/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	user, err := s.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	s.Checkout.Prefill(user)

	ctl.logger.Info("[auth.login] session signed in", zap.String("session_id", s.ID), zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", user))
}

// Register godoc
// @Summary Create an account
// @Description Demo registration: signs in a new user built from the request. Every field is required.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "New account"
// @Success 201 {object} models.ApiResponse{data=models.User}
// @Failure 400 {object} models.ApiResponse
// @Router /auth/register [post]
func (ctl *Controller) Register(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	user, err := s.Auth.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	s.Checkout.Prefill(user)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", user))
}
