// Package checkout runs the details → payment → confirmation flow and the
// simulated mobile-money payment inside it.
package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/cart"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/clock"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/validation"
	"go.uber.org/zap"
)

// Cart is the part of the cart manager checkout reads and clears.
type Cart interface {
	Items() []models.CartItem
	Clear(ctx context.Context)
}

type Flow struct {
	mu         sync.Mutex
	step       models.CheckoutStep
	details    models.ShippingDetails
	method     models.PaymentMethod
	mobile     models.MobileMoneyState
	order      *models.Order
	generation uint64

	cart   Cart
	payer  Payer
	clock  clock.Clock
	random clock.Random
	logger *zap.Logger
}

func NewFlow(c Cart, payer Payer, clk clock.Clock, rnd clock.Random, logger *zap.Logger) *Flow {
	return &Flow{
		step:   models.StepDetails,
		mobile: models.MobileMoneyState{Status: models.MobileMoneyClosed},
		cart:   c,
		payer:  payer,
		clock:  clk,
		random: rnd,
		logger: logger,
	}
}

// SubmitDetails validates the shipping form and moves on to payment. On a
// validation failure the returned error is a validation.Errors.
func (f *Flow) SubmitDetails(details models.ShippingDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != models.StepDetails {
		return ErrInvalidTransition
	}
	if len(f.cart.Items()) == 0 {
		return ErrEmptyCart
	}
	if err := validation.Shipping(details).Err(); err != nil {
		return err
	}

	f.details = details
	f.step = models.StepPayment
	f.mobile = models.MobileMoneyState{Status: models.MobileMoneyClosed}
	return nil
}

// Prefill copies the user's profile into any detail fields still empty.
func (f *Flow) Prefill(user models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d := &f.details
	fill(&d.FullName, user.Name)
	fill(&d.Email, user.Email)
	fill(&d.Phone, user.Phone)
	if user.Address != nil {
		fill(&d.Address, user.Address.Street)
		fill(&d.City, user.Address.City)
		fill(&d.County, user.Address.County)
		fill(&d.PostalCode, user.Address.PostalCode)
	}
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// Back returns from payment to details, keeping what was entered.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mobile.Status == models.MobileMoneyPending {
		return ErrPaymentPending
	}
	if f.step != models.StepPayment {
		return ErrInvalidTransition
	}
	f.step = models.StepDetails
	f.method = ""
	f.mobile = models.MobileMoneyState{Status: models.MobileMoneyClosed}
	return nil
}

// SelectPaymentMethod places a cash order straight away or opens the
// mobile-money phone form.
func (f *Flow) SelectPaymentMethod(ctx context.Context, method models.PaymentMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != models.StepPayment {
		return ErrInvalidTransition
	}
	if f.mobile.Status == models.MobileMoneyPending {
		return ErrPaymentPending
	}
	if !method.Valid() {
		return validation.Errors{"method": "Please select a payment method"}
	}
	if len(f.cart.Items()) == 0 {
		return ErrEmptyCart
	}

	f.method = method
	switch method {
	case models.PaymentCash:
		f.placeOrder(ctx, f.cart.Items(), "")
	case models.PaymentMpesa:
		f.mobile = models.MobileMoneyState{Status: models.MobileMoneyIdle, Phone: f.details.Phone}
	}
	return nil
}

// PayWithMobileMoney charges phone for the cart subtotal. It blocks for the
// simulated payment delay. A result that arrives after Reset or Cancel, or
// after ctx ends, is discarded.
func (f *Flow) PayWithMobileMoney(ctx context.Context, phone string) (models.Order, error) {
	f.mu.Lock()
	if f.step != models.StepPayment || f.method != models.PaymentMpesa {
		f.mu.Unlock()
		return models.Order{}, ErrInvalidTransition
	}
	switch f.mobile.Status {
	case models.MobileMoneyPending:
		f.mu.Unlock()
		return models.Order{}, ErrPaymentPending
	case models.MobileMoneyIdle:
	default:
		f.mu.Unlock()
		return models.Order{}, ErrInvalidTransition
	}
	if err := validation.MobileMoney(phone).Err(); err != nil {
		f.mu.Unlock()
		return models.Order{}, err
	}
	items := f.cart.Items()
	if len(items) == 0 {
		f.mu.Unlock()
		return models.Order{}, ErrEmptyCart
	}
	amount := cart.Subtotal(items)
	if amount.LessThan(MinMobileMoneyAmount) || amount.GreaterThan(MaxMobileMoneyAmount) {
		f.mu.Unlock()
		return models.Order{}, validation.Errors{
			"amount": "Amount must be between KSh " + MinMobileMoneyAmount.String() + " and KSh " + MaxMobileMoneyAmount.String(),
		}
	}

	normalized := validation.NormalizePhone(phone)
	f.generation++
	attempt := f.generation
	f.mobile = models.MobileMoneyState{Status: models.MobileMoneyPending, Phone: phone}
	f.mu.Unlock()

	ref, err := f.payer.Charge(ctx, normalized, amount)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.generation != attempt {
		f.logger.Info("[checkout] discarding stale payment result")
		return models.Order{}, ErrAttemptDiscarded
	}
	switch {
	case err == nil:
		return f.placeOrder(ctx, items, ref), nil
	case errors.Is(err, ErrPaymentDeclined):
		f.mobile = models.MobileMoneyState{Status: models.MobileMoneyFailed, Phone: phone, Error: DeclinedMessage}
		return models.Order{}, err
	default:
		// interrupted before a result: the form goes back to idle
		f.mobile = models.MobileMoneyState{Status: models.MobileMoneyIdle, Phone: phone}
		return models.Order{}, err
	}
}

// Retry clears a declined payment so the phone form can be submitted again.
func (f *Flow) Retry() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mobile.Status != models.MobileMoneyFailed {
		return ErrInvalidTransition
	}
	f.mobile = models.MobileMoneyState{Status: models.MobileMoneyIdle, Phone: f.mobile.Phone}
	return nil
}

// Cancel closes the phone form and returns to method selection.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.mobile.Status {
	case models.MobileMoneyPending:
		return ErrPaymentPending
	case models.MobileMoneyClosed:
		return ErrInvalidTransition
	}
	f.generation++
	f.method = ""
	f.mobile = models.MobileMoneyState{Status: models.MobileMoneyClosed}
	return nil
}

// Reset starts checkout over with an empty form. Any payment still in
// flight is discarded.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.step = models.StepDetails
	f.details = models.ShippingDetails{}
	f.method = ""
	f.mobile = models.MobileMoneyState{Status: models.MobileMoneyClosed}
	f.order = nil
}

func (f *Flow) State() models.CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := f.cart.Items()
	subtotal, _ := cart.Subtotal(items).Float64()
	state := models.CheckoutState{
		Step:          f.step,
		Details:       f.details,
		PaymentMethod: f.method,
		MobileMoney:   f.mobile,
		CartEmpty:     len(items) == 0,
		Subtotal:      subtotal,
	}
	if f.order != nil {
		o := copyOrder(*f.order)
		state.Order = &o
	}
	return state
}

func (f *Flow) Order() (models.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.order == nil {
		return models.Order{}, false
	}
	return copyOrder(*f.order), true
}

// placeOrder records items as the order and clears the cart. For mobile
// money, items is the snapshot that was charged. Must be called with f.mu held.
func (f *Flow) placeOrder(ctx context.Context, items []models.CartItem, reference string) models.Order {
	lines := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, models.OrderItem{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Product.EffectivePrice(),
			LineTotal: it.LineTotal(),
		})
	}
	subtotal, _ := cart.Subtotal(items).Float64()

	order := models.Order{
		OrderNumber:      NewOrderNumber(f.random),
		PaymentMethod:    f.method,
		PaymentReference: reference,
		Items:            lines,
		Subtotal:         subtotal,
		Shipping:         f.details,
		PlacedAt:         f.clock.Now(),
	}
	f.order = &order
	f.step = models.StepConfirmation
	f.mobile = models.MobileMoneyState{Status: models.MobileMoneyClosed}
	f.cart.Clear(ctx)

	f.logger.Info("[checkout] order placed",
		zap.String("order_number", order.OrderNumber),
		zap.String("payment_method", string(order.PaymentMethod)),
		zap.Float64("subtotal", order.Subtotal),
	)
	return copyOrder(order)
}

func copyOrder(o models.Order) models.Order {
	o.Items = append([]models.OrderItem(nil), o.Items...)
	return o
}
