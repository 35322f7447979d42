package category_controller

import (
	"github.com/mwakidenis/FarmFresh-Poultry-Products/cache"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/catalog"
	"go.uber.org/zap"
)

type Controller struct {
	catalog *catalog.Store
	cache   *category_cache.Cache
	logger  *zap.Logger
}

func New(store *catalog.Store, summaries *category_cache.Cache, logger *zap.Logger) *Controller {
	return &Controller{catalog: store, cache: summaries, logger: logger}
}
