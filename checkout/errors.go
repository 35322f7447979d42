package checkout

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("action not allowed at this checkout step")
	ErrPaymentPending    = errors.New("a mobile money payment is in progress")
	ErrPaymentDeclined   = errors.New("mobile money payment declined")
	// ErrAttemptDiscarded is returned to a payment whose result arrived after
	// the checkout was reset or the payment form was closed.
	ErrAttemptDiscarded = errors.New("payment attempt was discarded")
)

// DeclinedMessage is shown under the phone field after a declined payment.
const DeclinedMessage = "Payment failed. Please check your M-Pesa balance and try again, or contact M-Pesa customer support."
