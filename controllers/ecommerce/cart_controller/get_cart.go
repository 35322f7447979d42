package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// GetCart godoc
// @Summary Get cart
// @Description Returns the session's cart lines with the item count and subtotal
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Router /cart [get]
func (ctl *Controller) GetCart(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", s.Cart.Summary()))
}
