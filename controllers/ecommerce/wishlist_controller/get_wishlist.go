package wishlist_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// GetWishlist godoc
// @Summary Get wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.WishlistSummary}
// @Router /wishlist [get]
func (ctl *Controller) GetWishlist(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", s.Wishlist.Summary()))
}

// CheckWishlistItem godoc
// @Summary Is a product in the wishlist
// @Tags wishlist
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistMembership}
// @Router /wishlist/items/{id} [get]
func (ctl *Controller) CheckWishlistItem(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	productID := c.Param("id")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist membership fetched", models.WishlistMembership{
		ProductID:  productID,
		InWishlist: s.Wishlist.Contains(productID),
	}))
}
