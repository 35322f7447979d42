package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
)

// SetupAuthRoutes sets up all authentication routes. router must carry the
// session middleware.
func SetupAuthRoutes(router *gin.RouterGroup, ctl Controllers) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", ctl.Auth.Login)
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/logout", ctl.Auth.Logout)

		auth.GET("/me", middleware.RequireSignedIn(), ctl.Auth.GetMe)
	}
}
