package form_controller

import (
	"context"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/clock"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"go.uber.org/zap"
)

// Relay delivers validated form submissions to the farm's inbox.
type Relay interface {
	SubmitContact(ctx context.Context, form models.ContactForm) error
	SubmitTourBooking(ctx context.Context, booking models.TourBooking) error
}

type Controller struct {
	relay  Relay
	clock  clock.Clock
	logger *zap.Logger
}

// New takes the clock tour dates are checked against.
func New(relay Relay, clk clock.Clock, logger *zap.Logger) *Controller {
	return &Controller{relay: relay, clock: clk, logger: logger}
}
