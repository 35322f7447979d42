package models

import "time"

type PaymentMethod string

const (
	PaymentMpesa PaymentMethod = "mpesa"
	PaymentCash  PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMpesa || m == PaymentCash
}

// ShippingDetails is the delivery form filled in at the first checkout step.
type ShippingDetails struct {
	FullName   string `json:"fullName" validate:"notblank,person_name" example:"John Doe"`
	Email      string `json:"email" validate:"notblank,email" example:"john@example.com"`
	Phone      string `json:"phone" validate:"notblank,kenyan_phone" example:"+254712345678"`
	Address    string `json:"address" validate:"notblank" example:"123 Main St"`
	City       string `json:"city" validate:"notblank" example:"Nairobi"`
	County     string `json:"county" validate:"notblank" example:"Nairobi"`
	PostalCode string `json:"postalCode,omitempty" example:"00100"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// Order is the throwaway confirmation of a simulated purchase. It is never
// persisted and order numbers carry no uniqueness guarantee.
type Order struct {
	OrderNumber      string          `json:"orderNumber" example:"ORD482913"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod"`
	PaymentReference string          `json:"mpesaReference,omitempty" example:"MPESA20240115103000417"`
	Items            []OrderItem     `json:"items"`
	Subtotal         float64         `json:"subtotal"`
	Shipping         ShippingDetails `json:"shipping"`
	PlacedAt         time.Time       `json:"placedAt"`
}

// ═══════════════════════════════════════════════════════════
// Checkout state
// ═══════════════════════════════════════════════════════════

type CheckoutStep string

const (
	StepDetails      CheckoutStep = "details"
	StepPayment      CheckoutStep = "payment"
	StepConfirmation CheckoutStep = "confirmation"
)

// MobileMoneyStatus tracks the phone sub-form inside the payment step.
type MobileMoneyStatus string

const (
	MobileMoneyClosed  MobileMoneyStatus = "closed"
	MobileMoneyIdle    MobileMoneyStatus = "idle"
	MobileMoneyPending MobileMoneyStatus = "pending"
	MobileMoneyFailed  MobileMoneyStatus = "failed"
)

type MobileMoneyState struct {
	Status MobileMoneyStatus `json:"status"`
	Phone  string            `json:"phone,omitempty"`
	Error  string            `json:"error,omitempty"`
}

type CheckoutState struct {
	Step          CheckoutStep     `json:"step"`
	Details       ShippingDetails  `json:"details"`
	PaymentMethod PaymentMethod    `json:"paymentMethod,omitempty"`
	MobileMoney   MobileMoneyState `json:"mobileMoney"`
	Order         *Order           `json:"order,omitempty"`
	CartEmpty     bool             `json:"cartEmpty"`
	Subtotal      float64          `json:"subtotal"`
}

type SelectPaymentMethodRequest struct {
	Method PaymentMethod `json:"method" binding:"required" example:"mpesa"`
}

type MobileMoneyRequest struct {
	Phone string `json:"phone" binding:"required" example:"0712345678"`
}
