package utils

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/auth"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/cart"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/checkout"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/search"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/services"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/validation"
)

// StatusFor maps a domain error to the status code and message sent to the
// client. Unknown errors are a 500 with a generic message.
func StatusFor(err error) (int, string) {
	var stockErr *cart.StockError
	var fieldErrs validation.Errors

	switch {
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest, "Validation failed"
	case errors.As(err, &stockErr):
		return http.StatusConflict, stockErr.Error()
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, auth.ErrMissingFields),
		errors.Is(err, search.ErrUnknownSortKey):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, checkout.ErrPaymentDeclined):
		return http.StatusPaymentRequired, checkout.DeclinedMessage
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, checkout.ErrPaymentPending),
		errors.Is(err, checkout.ErrAttemptDiscarded):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrRelayRejected):
		return http.StatusBadGateway, "Failed to send. Please try again later"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout, "Request was cancelled"
	}
	return http.StatusInternalServerError, "Something went wrong"
}

// RespondWithError writes err in the error envelope. Field validation
// failures carry the field → message map as data.
func RespondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, message := StatusFor(err)

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		c.JSON(status, models.ErrorResponseWithData(c, message, fieldErrs))
		return
	}
	c.JSON(status, models.ErrorResponse(c, message))
}
