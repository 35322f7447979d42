package form_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/validation"
	"go.uber.org/zap"
)

// SubmitContact godoc
// @Summary Send the contact form
// @Description Validates the message and forwards it to the farm by email
// @Tags forms
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body models.ContactForm true "Contact form"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Field errors in data"
// @Failure 429 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Relay failed"
// @Router /forms/contact [post]
func (ctl *Controller) SubmitContact(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	form = validation.SanitizeContact(form)
	if err := validation.Contact(form).Err(); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	if err := ctl.relay.SubmitContact(c.Request.Context(), form); err != nil {
		ctl.logger.Error("[forms.contact] relay failed", zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to send message. Please try again later"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Thank you for your message! We'll get back to you soon.", nil))
}
