package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// GetCheckout godoc
// @Summary Get checkout state
// @Description Current step, entered details, payment sub-state and order. Empty detail fields are filled from the signed-in user's profile.
// @Tags checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Router /checkout [get]
func (ctl *Controller) GetCheckout(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	if user, signedIn := s.Auth.CurrentUser(); signedIn {
		s.Checkout.Prefill(user)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout fetched successfully", s.Checkout.State()))
}

// GetConfirmation godoc
// @Summary Get the placed order
// @Tags checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 404 {object} models.ApiResponse "No order placed yet"
// @Router /checkout/confirmation [get]
func (ctl *Controller) GetConfirmation(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	order, placed := s.Checkout.Order()
	if !placed {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No order has been placed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order placed successfully", order))
}
