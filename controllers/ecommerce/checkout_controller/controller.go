package checkout_controller

import (
	"github.com/mwakidenis/FarmFresh-Poultry-Products/cache"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"go.uber.org/zap"
)

type Controller struct {
	site     models.SiteConfig
	receipts *category_cache.Receipts
	logger   *zap.Logger
}

// New takes the site config for the business details printed on receipts.
func New(site models.SiteConfig, receipts *category_cache.Receipts, logger *zap.Logger) *Controller {
	return &Controller{site: site, receipts: receipts, logger: logger}
}
