package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
)

// SubmitDetails godoc
// @Summary Submit shipping details
// @Description Validates the shipping form and moves checkout to the payment step
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body models.ShippingDetails true "Shipping details"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Failure 400 {object} models.ApiResponse "Field errors in data"
// @Failure 409 {object} models.ApiResponse "Empty cart or wrong step"
// @Router /checkout/details [post]
func (ctl *Controller) SubmitDetails(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	var details models.ShippingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if err := s.Checkout.SubmitDetails(details); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Details saved", s.Checkout.State()))
}

// GoBack godoc
// @Summary Return to shipping details
// @Tags checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Failure 409 {object} models.ApiResponse
// @Router /checkout/back [post]
func (ctl *Controller) GoBack(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	if err := s.Checkout.Back(); err != nil {
		utils.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Back to details", s.Checkout.State()))
}

// ResetCheckout godoc
// @Summary Start checkout over
// @Description Clears the form and discards any payment still in flight
// @Tags checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Router /checkout/reset [post]
func (ctl *Controller) ResetCheckout(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	s.Checkout.Reset()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout reset", s.Checkout.State()))
}
