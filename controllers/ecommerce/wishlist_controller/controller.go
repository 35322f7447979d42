package wishlist_controller

import (
	"github.com/mwakidenis/FarmFresh-Poultry-Products/catalog"
	"go.uber.org/zap"
)

type Controller struct {
	catalog *catalog.Store
	logger  *zap.Logger
}

func New(store *catalog.Store, logger *zap.Logger) *Controller {
	return &Controller{catalog: store, logger: logger}
}
