package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"go.uber.org/zap"
)

// SelectPaymentMethod godoc
// @Summary Choose how to pay
// @Description "cash" places the order immediately. "mpesa" opens the M-Pesa phone form.
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body models.SelectPaymentMethodRequest true "Payment method"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /checkout/payment-method [post]
func (ctl *Controller) SelectPaymentMethod(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	var req models.SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if err := s.Checkout.SelectPaymentMethod(c.Request.Context(), req.Method); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	state := s.Checkout.State()
	message := "Payment method selected"
	if state.Order != nil {
		message = "Order placed successfully"
		ctl.logger.Info("[checkout.cash] order placed",
			zap.String("session_id", s.ID),
			zap.String("order_number", state.Order.OrderNumber),
		)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, state))
}
