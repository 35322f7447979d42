package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/cache"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/catalog"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// FilterMetadata is what the filter sidebar needs to render its controls.
type FilterMetadata struct {
	Categories []models.CategorySummary `json:"categories"`
	PriceRange models.PriceRange        `json:"priceRange"`
	SortKeys   []models.SortKey         `json:"sortKeys"`
}

var sortKeys = []models.SortKey{
	models.SortFeatured,
	models.SortRelevance,
	models.SortNameAsc,
	models.SortNameDesc,
	models.SortPriceAsc,
	models.SortPriceDesc,
}

type Controller struct {
	catalog *catalog.Store
	cache   *category_cache.Cache
}

func New(store *catalog.Store, summaries *category_cache.Cache) *Controller {
	return &Controller{catalog: store, cache: summaries}
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns categories with counts, the effective price range and the sort options for storefront filters
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=FilterMetadata}
// @Router /store/filters/metadata [get]
func (ctl *Controller) GetFilterMetadata(c *gin.Context) {
	metadata := FilterMetadata{
		Categories: ctl.cache.Summaries(ctl.catalog.Summaries),
		PriceRange: priceRange(ctl.catalog.All()),
		SortKeys:   sortKeys,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", metadata))
}

// priceRange spans the effective prices of products. An empty catalog gives
// the zero range.
func priceRange(products []models.Product) models.PriceRange {
	if len(products) == 0 {
		return models.PriceRange{}
	}
	r := models.PriceRange{Min: products[0].EffectivePrice(), Max: products[0].EffectivePrice()}
	for _, p := range products[1:] {
		price := p.EffectivePrice()
		r.Min = min(r.Min, price)
		r.Max = max(r.Max, price)
	}
	return r
}
