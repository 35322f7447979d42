package form_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/validation"
	"go.uber.org/zap"
)

// SubmitTourBooking godoc
// @Summary Book a farm tour
// @Description Tours run at 10:00 and 14:00 for groups of up to 10. The date must be in the future.
// @Tags forms
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body models.TourBooking true "Booking request"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Field errors in data"
// @Failure 429 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Relay failed"
// @Router /forms/tour-booking [post]
func (ctl *Controller) SubmitTourBooking(c *gin.Context) {
	var booking models.TourBooking
	if err := c.ShouldBind(&booking); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	booking = validation.SanitizeTourBooking(booking)
	if err := validation.TourBooking(booking, ctl.clock.Now()).Err(); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	if err := ctl.relay.SubmitTourBooking(c.Request.Context(), booking); err != nil {
		ctl.logger.Error("[forms.tour] relay failed", zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to submit booking. Please try again later"))
		return
	}

	ctl.logger.Info("[forms.tour] booking sent", zap.String("date", booking.Date), zap.String("time", booking.Time))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tour booked! We'll confirm your visit by email.", nil))
}
