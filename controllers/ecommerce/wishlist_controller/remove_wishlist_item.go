package wishlist_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// RemoveWishlistItem godoc
// @Summary Remove a product from the wishlist
// @Tags wishlist
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistSummary}
// @Router /wishlist/items/{id} [delete]
func (ctl *Controller) RemoveWishlistItem(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	s.Wishlist.Remove(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Removed from wishlist", s.Wishlist.Summary()))
}

// ClearWishlist godoc
// @Summary Empty the wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.WishlistSummary}
// @Router /wishlist [delete]
func (ctl *Controller) ClearWishlist(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	s.Wishlist.Clear(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist cleared", s.Wishlist.Summary()))
}
