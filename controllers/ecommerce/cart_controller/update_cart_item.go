package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
)

// UpdateCartItem godoc
// @Summary Set quantity of a cart line
// @Description Sets the line to exactly quantity. Zero removes the line; ids not in the cart are ignored.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Not enough stock"
// @Router /cart/items/{id} [patch]
func (ctl *Controller) UpdateCartItem(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if err := s.Cart.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated successfully", s.Cart.Summary()))
}
