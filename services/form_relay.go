package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// ErrRelayRejected means the relay answered with a non-2xx status.
var ErrRelayRejected = errors.New("form relay rejected the submission")

const (
	contactSubject = "New Contact Form Submission"
	tourSubject    = "New Farm Tour Booking Request"
)

// FormRelay forwards contact and tour booking forms to a form-to-email relay
// such as formsubmit.co.
type FormRelay struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewFormRelay posts to baseURL/recipient. A nil client gets a traced client
// with a 10 second timeout.
func NewFormRelay(baseURL, recipient string, client *http.Client, logger *zap.Logger) *FormRelay {
	if client == nil {
		client = &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &FormRelay{
		endpoint: strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(recipient),
		client:   client,
		logger:   logger,
	}
}

func (r *FormRelay) SubmitContact(ctx context.Context, form models.ContactForm) error {
	values := url.Values{}
	values.Set("name", form.Name)
	values.Set("email", form.Email)
	if form.Phone != "" {
		values.Set("phone", form.Phone)
	}
	values.Set("subject", form.Subject)
	values.Set("message", form.Message)

	subject := contactSubject
	if form.Subject != "" {
		subject = contactSubject + ": " + form.Subject
	}
	return r.submit(ctx, "contact", subject, values)
}

func (r *FormRelay) SubmitTourBooking(ctx context.Context, booking models.TourBooking) error {
	values := url.Values{}
	values.Set("name", booking.Name)
	values.Set("email", booking.Email)
	values.Set("phone", booking.Phone)
	values.Set("date", booking.Date)
	values.Set("time", booking.Time)
	values.Set("groupSize", strconv.Itoa(booking.GroupSize))
	if booking.Message != "" {
		values.Set("message", booking.Message)
	}
	return r.submit(ctx, "tour_booking", tourSubject, values)
}

func (r *FormRelay) submit(ctx context.Context, kind, subject string, values url.Values) error {
	ctx, span := otel.Tracer("farmfresh.relay").Start(ctx, "FormRelay.Submit")
	defer span.End()
	span.SetAttributes(attribute.String("form.kind", kind))

	values.Set("_subject", subject)
	values.Set("_template", "table")
	values.Set("_captcha", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		r.logger.Error("[relay] failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("[relay] failed to send request", zap.String("form", kind), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Request failed")
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.Warn("[relay] relay returned non-2xx",
			zap.String("form", kind),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		span.SetStatus(codes.Error, "Rejected")
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode)
	}

	r.logger.Info("[relay] form delivered", zap.String("form", kind))
	span.SetStatus(codes.Ok, "Delivered")
	return nil
}
