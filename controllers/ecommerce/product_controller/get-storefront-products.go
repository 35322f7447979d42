package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/search"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"go.uber.org/zap"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Get paginated products for the storefront with optional category and price filtering
// @Tags store
// @Produce json
// @Param category query string false "Category" Enums(all, chicks, eggs, chicken, products)
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sortBy query string false "Sort order" Enums(featured, relevance, name-asc, name-desc, price-asc, price-desc) default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 400 {object} models.ApiResponse
// @Router /store/products [get]
func (ctl *Controller) GetStorefrontProducts(c *gin.Context) {
	filters, err := utils.ParseFilters(c, models.SortFeatured)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	page, limit := parsePagination(c)

	products := search.Apply(ctl.catalog.All(), filters)
	pageItems, meta := paginate(products, page, limit)

	ctl.logger.Debug("[store.products] listed",
		zap.String("category", string(filters.Category)),
		zap.String("sort", string(filters.Sort)),
		zap.Int("total", meta.Total),
	)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", pageItems, meta))
}
