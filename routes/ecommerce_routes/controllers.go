package ecommerce_routes

import (
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/auth_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/cart_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/category_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/checkout_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/content_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/filter_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/form_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/product_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/wishlist_controller"
)

// Controllers is every handler set the storefront API routes to.
type Controllers struct {
	Products   *product_controller.Controller
	Categories *category_controller.Controller
	Filters    *filter_controller.Controller
	Cart       *cart_controller.Controller
	Wishlist   *wishlist_controller.Controller
	Auth       *auth_controller.Controller
	Checkout   *checkout_controller.Controller
	Content    *content_controller.Controller
	Forms      *form_controller.Controller
}
