package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"go.uber.org/zap"
)

// AddCartItem godoc
// @Summary Add product to cart
// @Description Adds quantity (default 1) of a product. The line may not exceed the product's stock.
// @Tags cart
// @Accept json
// @Produce json
// @Param body body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Not enough stock"
// @Router /cart/items [post]
func (ctl *Controller) AddCartItem(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, found := ctl.catalog.ByID(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	item, err := s.Cart.Add(c.Request.Context(), product, req.Quantity)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	ctl.logger.Info("[cart.add] item added",
		zap.String("session_id", s.ID),
		zap.String("product_id", product.ID),
		zap.Int("quantity", item.Quantity),
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, product.Name+" added to cart", s.Cart.Summary()))
}
