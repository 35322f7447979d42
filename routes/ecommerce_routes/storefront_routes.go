package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, ctl Controllers) {
	// Storefront routes (public, no session required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", ctl.Products.GetStorefrontProducts)        // List with filters
		products.GET("/featured", ctl.Products.GetFeaturedProducts) // Home page picks
		products.GET("/:id", ctl.Products.GetStorefrontProductByID) // Single product + related
	}

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", ctl.Categories.GetCategories)       // List all with counts
		categories.GET("/:id", ctl.Categories.GetCategoryByID) // Single category + products
	}

	store.GET("/search", ctl.Products.SearchProducts)
	store.GET("/filters/metadata", ctl.Filters.GetFilterMetadata)
}
