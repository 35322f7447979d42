package wishlist_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"go.uber.org/zap"
)

// AddWishlistItem godoc
// @Summary Save a product to the wishlist
// @Description Adding a product that is already saved changes nothing.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param body body models.WishlistRequest true "Product"
// @Success 200 {object} models.ApiResponse{data=models.WishlistSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /wishlist/items [post]
func (ctl *Controller) AddWishlistItem(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	product, found := ctl.catalog.ByID(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	message := "Already in wishlist"
	if s.Wishlist.Add(c.Request.Context(), product) {
		message = product.Name + " added to wishlist"
		ctl.logger.Debug("[wishlist.add] saved", zap.String("session_id", s.ID), zap.String("product_id", product.ID))
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, s.Wishlist.Summary()))
}

// ToggleWishlistItem godoc
// @Summary Toggle a product in the wishlist
// @Tags wishlist
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistMembership}
// @Failure 404 {object} models.ApiResponse
// @Router /wishlist/items/{id}/toggle [post]
func (ctl *Controller) ToggleWishlistItem(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	product, found := ctl.catalog.ByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	in := s.Wishlist.Toggle(c.Request.Context(), product)
	message := "Removed from wishlist"
	if in {
		message = "Added to wishlist"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, models.WishlistMembership{
		ProductID:  product.ID,
		InWishlist: in,
	}))
}
