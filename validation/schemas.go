package validation

import (
	"context"
	"time"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

func Contact(form models.ContactForm) Errors {
	return check(context.Background(), form)
}

// TourBooking checks a farm tour request. now decides what counts as a
// future date.
func TourBooking(form models.TourBooking, now time.Time) Errors {
	return check(withNow(context.Background(), now), form)
}

func Shipping(details models.ShippingDetails) Errors {
	return check(context.Background(), details)
}

// MobileMoney checks the number a payment prompt is sent to. It also accepts
// the bare 254 prefix.
func MobileMoney(phone string) Errors {
	errs := Errors{}
	if err := validate.Var(phone, "mpesa_phone"); err != nil {
		errs["phone"] = MsgMobileMoney
	}
	return errs
}

// SanitizeContact trims every field and strips script elements.
func SanitizeContact(form models.ContactForm) models.ContactForm {
	return models.ContactForm{
		Name:    Sanitize(form.Name),
		Email:   Sanitize(form.Email),
		Phone:   Sanitize(form.Phone),
		Subject: Sanitize(form.Subject),
		Message: Sanitize(form.Message),
	}
}

func SanitizeTourBooking(form models.TourBooking) models.TourBooking {
	return models.TourBooking{
		Name:      Sanitize(form.Name),
		Email:     Sanitize(form.Email),
		Phone:     Sanitize(form.Phone),
		Date:      Sanitize(form.Date),
		Time:      Sanitize(form.Time),
		GroupSize: form.GroupSize,
		Message:   Sanitize(form.Message),
	}
}
