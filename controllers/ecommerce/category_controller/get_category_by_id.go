package category_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/search"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
)

// GetCategoryByID godoc
// @Summary Get category with its products
// @Description Get a category and its products, filtered by price and sorted
// @Tags store
// @Produce json
// @Param id path string true "Category ID" Enums(chicks, eggs, chicken, products)
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sortBy query string false "Sort order" Enums(featured, relevance, name-asc, name-desc, price-asc, price-desc) default(featured)
// @Success 200 {object} models.ApiResponse{data=models.CategoryWithProducts}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/categories/{id} [get]
func (ctl *Controller) GetCategoryByID(c *gin.Context) {
	categoryID := models.CategoryID(strings.ToLower(c.Param("id")))

	category, ok := ctl.catalog.CategoryByID(categoryID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	filters, err := utils.ParseFilters(c, models.SortFeatured)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	// The path decides the category; a category query parameter is ignored.
	filters.Category = ""

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", models.CategoryWithProducts{
		Category: category,
		Products: search.Apply(ctl.catalog.ByCategory(category.ID), filters),
	}))
}
