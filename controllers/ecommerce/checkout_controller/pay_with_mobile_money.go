package checkout_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/checkout"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"go.uber.org/zap"
)

// PayWithMobileMoney godoc
// @Summary Pay with M-Pesa
// @Description Simulated STK push. The request blocks for the payment delay and then either places the order or reports a decline.
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body models.MobileMoneyRequest true "Phone to charge"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Failure 400 {object} models.ApiResponse "Invalid phone or amount"
// @Failure 402 {object} models.ApiResponse{data=models.CheckoutState} "Payment declined"
// @Failure 409 {object} models.ApiResponse
// @Router /checkout/mobile-money [post]
func (ctl *Controller) PayWithMobileMoney(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	var req models.MobileMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	order, err := s.Checkout.PayWithMobileMoney(c.Request.Context(), req.Phone)
	if errors.Is(err, checkout.ErrPaymentDeclined) {
		_ = c.Error(err)
		c.JSON(http.StatusPaymentRequired, models.ErrorResponseWithData(c, checkout.DeclinedMessage, s.Checkout.State()))
		return
	}
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	ctl.logger.Info("[checkout.mpesa] order placed",
		zap.String("session_id", s.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("reference", order.PaymentReference),
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment successful", s.Checkout.State()))
}

// RetryMobileMoney godoc
// @Summary Reopen the phone form after a decline
// @Tags checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Failure 409 {object} models.ApiResponse
// @Router /checkout/mobile-money/retry [post]
func (ctl *Controller) RetryMobileMoney(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	if err := s.Checkout.Retry(); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ready to retry", s.Checkout.State()))
}

// CancelMobileMoney godoc
// @Summary Close the phone form
// @Description Returns to payment method selection. Refused while a payment is pending.
// @Tags checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Failure 409 {object} models.ApiResponse
// @Router /checkout/mobile-money/cancel [post]
func (ctl *Controller) CancelMobileMoney(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	if err := s.Checkout.Cancel(); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment cancelled", s.Checkout.State()))
}
