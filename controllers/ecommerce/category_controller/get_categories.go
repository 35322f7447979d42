package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get all categories with product counts for the storefront
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CategorySummary}
// @Router /store/categories [get]
func (ctl *Controller) GetCategories(c *gin.Context) {
	summaries := ctl.cache.Summaries(func() []models.CategorySummary {
		ctl.logger.Debug("[store.categories] cache miss, counting products")
		return ctl.catalog.Summaries()
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", summaries))
}
