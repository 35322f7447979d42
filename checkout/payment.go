package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/clock"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var (
	MinMobileMoneyAmount = decimal.NewFromInt(1)
	MaxMobileMoneyAmount = decimal.NewFromInt(300000)
)

const referenceTimeLayout = "20060102150405"

// Payer charges a phone number for an amount and returns the payment reference.
type Payer interface {
	Charge(ctx context.Context, phone string, amount decimal.Decimal) (string, error)
}

// MobileMoneySimulator stands in for an STK push: it waits, then approves a
// share of requests decided by SuccessRate.
type MobileMoneySimulator struct {
	Clock       clock.Clock
	Random      clock.Random
	Delay       time.Duration
	SuccessRate float64
	Logger      *zap.Logger
}

func NewMobileMoneySimulator(clk clock.Clock, rnd clock.Random, delay time.Duration, successRate float64, logger *zap.Logger) *MobileMoneySimulator {
	return &MobileMoneySimulator{Clock: clk, Random: rnd, Delay: delay, SuccessRate: successRate, Logger: logger}
}

func (s *MobileMoneySimulator) Charge(ctx context.Context, phone string, amount decimal.Decimal) (string, error) {
	tracer := otel.Tracer("farmfresh.checkout")
	ctx, span := tracer.Start(ctx, "MobileMoney.Charge")
	defer span.End()
	span.SetAttributes(attribute.String("payment.amount", amount.StringFixed(2)))

	if err := clock.Sleep(ctx, s.Clock, s.Delay); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Charge interrupted")
		return "", err
	}

	if s.Random.Float64() >= s.SuccessRate {
		s.Logger.Info("[mpesa] payment declined", zap.String("phone", maskPhone(phone)))
		span.SetStatus(codes.Error, "Declined")
		return "", ErrPaymentDeclined
	}

	ref := NewPaymentReference(s.Clock.Now(), s.Random)
	span.SetAttributes(attribute.String("payment.reference", ref))
	span.SetStatus(codes.Ok, "Approved")
	s.Logger.Info("[mpesa] payment approved", zap.String("reference", ref), zap.String("amount", amount.StringFixed(2)))
	return ref, nil
}

// NewPaymentReference builds MPESA + UTC timestamp + a three digit suffix.
func NewPaymentReference(now time.Time, rnd clock.Random) string {
	return fmt.Sprintf("MPESA%s%03d", now.UTC().Format(referenceTimeLayout), rnd.IntN(1000))
}

// NewOrderNumber returns ORD followed by six random digits. Numbers are not
// checked for uniqueness.
func NewOrderNumber(rnd clock.Random) string {
	return fmt.Sprintf("ORD%06d", rnd.IntN(1_000_000))
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return "****" + phone[len(phone)-4:]
}
