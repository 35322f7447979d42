package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
)

func SetupContentRoutes(router *gin.RouterGroup, ctl Controllers) {
	content := router.Group("/content")
	{
		content.GET("/blog", ctl.Content.GetBlogPosts)
		content.GET("/blog/categories", ctl.Content.GetBlogCategories)
		content.GET("/blog/:id", ctl.Content.GetBlogPostByID)
		content.GET("/faq", ctl.Content.GetFAQ)
		content.GET("/about", ctl.Content.GetAbout)
	}

	router.GET("/site", ctl.Content.GetSiteConfig)
}

// SetupFormRoutes sets up the contact and tour booking forms. limiter, when
// not nil, runs before both.
func SetupFormRoutes(router *gin.RouterGroup, ctl Controllers, limiter gin.HandlerFunc) {
	forms := router.Group("/forms")
	if limiter != nil {
		forms.Use(limiter)
	}
	{
		forms.POST("/contact", ctl.Forms.SubmitContact)
		forms.POST("/tour-booking", ctl.Forms.SubmitTourBooking)
	}
}
