package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/search"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"go.uber.org/zap"
)

// SearchProducts godoc
// @Summary Search products
// @Description Case-insensitive search over name, description, category and tags. Queries shorter than two characters return no products.
// @Tags store
// @Produce json
// @Param q query string true "Search query"
// @Param category query string false "Category" Enums(all, chicks, eggs, chicken, products)
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sortBy query string false "Sort order" Enums(relevance, name-asc, name-desc, price-asc, price-desc, featured) default(relevance)
// @Success 200 {object} models.ApiResponse{data=models.SearchResult}
// @Failure 400 {object} models.ApiResponse
// @Router /store/search [get]
func (ctl *Controller) SearchProducts(c *gin.Context) {
	filters, err := utils.ParseFilters(c, models.SortRelevance)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	products := search.Search(ctl.catalog.All(), filters)
	ctl.logger.Debug("[store.search] searched",
		zap.String("query", filters.Query),
		zap.Int("count", len(products)),
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search completed successfully", models.SearchResult{
		Query:    filters.Query,
		Filters:  filters,
		Products: products,
		Count:    len(products),
	}))
}
