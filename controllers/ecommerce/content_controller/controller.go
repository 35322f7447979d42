package content_controller

import (
	"github.com/mwakidenis/FarmFresh-Poultry-Products/content"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

type Controller struct {
	content *content.Store
	site    models.SiteConfig
}

func New(store *content.Store, site models.SiteConfig) *Controller {
	return &Controller{content: store, site: site}
}
