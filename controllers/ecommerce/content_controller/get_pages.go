package content_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// GetFAQ godoc
// @Summary Frequently asked questions
// @Tags content
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.FAQ}
// @Router /content/faq [get]
func (ctl *Controller) GetFAQ(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQ fetched successfully", ctl.content.FAQ()))
}

// GetAbout godoc
// @Summary About page
// @Tags content
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.AboutPage}
// @Router /content/about [get]
func (ctl *Controller) GetAbout(c *gin.Context) {
	about := ctl.content.About()
	if about.Email == "" {
		about.Email = ctl.site.Contact.Email
	}
	if about.Phone == "" {
		about.Phone = ctl.site.Contact.Phone
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "About fetched successfully", about))
}

// GetSiteConfig godoc
// @Summary Public site configuration
// @Description Contact details, feature flags, currency, M-Pesa limits and farm tour options
// @Tags content
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SiteConfig}
// @Router /site [get]
func (ctl *Controller) GetSiteConfig(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Site config fetched successfully", ctl.site))
}
