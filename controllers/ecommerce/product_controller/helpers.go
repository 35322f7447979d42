package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/catalog"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"go.uber.org/zap"
)

// relatedLimit is how many related products a detail response carries.
const relatedLimit = 4

type Controller struct {
	catalog *catalog.Store
	logger  *zap.Logger
}

func New(store *catalog.Store, logger *zap.Logger) *Controller {
	return &Controller{catalog: store, logger: logger}
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// paginate slices one page out of products. A page past the end is empty.
func paginate(products []models.Product, page, limit int) ([]models.Product, *models.Pagination) {
	total := len(products)
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	start := (page - 1) * limit
	if start >= total {
		return []models.Product{}, meta
	}
	end := min(start+limit, total)
	return products[start:end], meta
}
