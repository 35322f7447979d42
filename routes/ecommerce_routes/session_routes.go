package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
)

// SetupSessionRoutes sets up cart, wishlist and checkout. router must carry
// the session middleware.
func SetupSessionRoutes(router *gin.RouterGroup, ctl Controllers) {
	cart := router.Group("/cart")
	{
		cart.GET("", ctl.Cart.GetCart)
		cart.DELETE("", ctl.Cart.ClearCart)
		cart.POST("/items", ctl.Cart.AddCartItem)
		cart.PATCH("/items/:id", ctl.Cart.UpdateCartItem)
		cart.DELETE("/items/:id", ctl.Cart.RemoveCartItem)
	}

	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", ctl.Wishlist.GetWishlist)
		wishlist.DELETE("", ctl.Wishlist.ClearWishlist)
		wishlist.POST("/items", ctl.Wishlist.AddWishlistItem)
		wishlist.GET("/items/:id", ctl.Wishlist.CheckWishlistItem)
		wishlist.POST("/items/:id/toggle", ctl.Wishlist.ToggleWishlistItem)
		wishlist.DELETE("/items/:id", ctl.Wishlist.RemoveWishlistItem)
	}

	checkout := router.Group("/checkout")
	{
		checkout.GET("", ctl.Checkout.GetCheckout)
		checkout.POST("/details", ctl.Checkout.SubmitDetails)
		checkout.POST("/back", ctl.Checkout.GoBack)
		checkout.POST("/payment-method", ctl.Checkout.SelectPaymentMethod)
		checkout.POST("/reset", ctl.Checkout.ResetCheckout)

		// M-Pesa
		checkout.POST("/mobile-money", ctl.Checkout.PayWithMobileMoney)
		checkout.POST("/mobile-money/retry", ctl.Checkout.RetryMobileMoney)
		checkout.POST("/mobile-money/cancel", ctl.Checkout.CancelMobileMoney)

		// After the order is placed
		checkout.GET("/confirmation", ctl.Checkout.GetConfirmation)
		checkout.GET("/receipt", ctl.Checkout.DownloadReceiptPDF)
	}
}
