package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Router /cart/items/{id} [delete]
func (ctl *Controller) RemoveCartItem(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	s.Cart.Remove(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", s.Cart.Summary()))
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Router /cart [delete]
func (ctl *Controller) ClearCart(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	s.Cart.Clear(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", s.Cart.Summary()))
}
