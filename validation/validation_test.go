package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKenyanPhone(t *testing.T) {
	valid := []string{"+254712345678", "0712345678", "0112345678", "+254 712 345 678", "(0712) 345-678"}
	for _, p := range valid {
		assert.True(t, IsKenyanPhone(p), p)
	}

	invalid := []string{"", "254712345678", "0812345678", "071234567", "+2547123456789", "phone"}
	for _, p := range invalid {
		assert.False(t, IsKenyanPhone(p), p)
	}
}

func TestMobileMoneyAcceptsBare254(t *testing.T) {
	for _, p := range []string{"+254712345678", "254712345678", "0712345678", "0112 345 678"} {
		assert.Empty(t, MobileMoney(p), p)
	}
	for _, p := range []string{"", "12345", "0912345678"} {
		assert.Equal(t, Errors{"phone": MsgMobileMoney}, MobileMoney(p), p)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+254712345678", NormalizePhone("0712345678"))
	assert.Equal(t, "+254712345678", NormalizePhone("254712345678"))
	assert.Equal(t, "+254712345678", NormalizePhone("+254 712-345-678"))
	assert.Equal(t, "hello", NormalizePhone("hello"))
}

func validShipping() models.ShippingDetails {
	return models.ShippingDetails{
		FullName: "John Doe",
		Email:    "john@example.com",
		Phone:    "0712345678",
		Address:  "123 Main St",
		City:     "Nairobi",
		County:   "Nairobi",
	}
}

func TestEmail(t *testing.T) {
	d := validShipping()
	assert.Empty(t, Shipping(d))

	for _, bad := range []string{"jane@example", "jane doe@example.com"} {
		d.Email = bad
		assert.Equal(t, MsgInvalidEmail, Shipping(d)["email"], bad)
	}

	d.Email = "   "
	assert.Equal(t, MsgRequired, Shipping(d)["email"], "blank is reported as missing")
}

func TestNameLength(t *testing.T) {
	d := validShipping()

	d.FullName = "Jo"
	assert.NotContains(t, Shipping(d), "fullName")

	d.FullName = " J "
	assert.Equal(t, "Name must be at least 2 characters", Shipping(d)["fullName"])

	d.FullName = strings.Repeat("a", 51)
	assert.Equal(t, "Name must be less than 50 characters", Shipping(d)["fullName"])
}

func TestFutureDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	form := models.TourBooking{
		Name: "Jane Wanjiru", Email: "jane@example.com", Phone: "0712345678",
		Time: "14:00", GroupSize: 2,
	}

	form.Date = "2026-03-10"
	assert.Empty(t, TourBooking(form, now), "today is allowed")
	form.Date = "2026-04-01"
	assert.Empty(t, TourBooking(form, now))
	form.Date = "2026-03-09"
	assert.Equal(t, MsgFutureDate, TourBooking(form, now)["date"])
	form.Date = "10/03/2026"
	assert.Equal(t, MsgInvalidDate, TourBooking(form, now)["date"])
}

func TestSanitizeStripsScripts(t *testing.T) {
	got := Sanitize("  hello <script>alert('x')</script>world  ")
	assert.Equal(t, "hello world", got)
}

func TestContactSchema(t *testing.T) {
	form := models.ContactForm{
		Name:    "Jane Wanjiru",
		Email:   "jane@example.com",
		Subject: "Bulk order",
		Message: "I would like 200 layer chicks.",
	}
	assert.NoError(t, Contact(form).Err())

	form.Phone = "  "
	assert.NoError(t, Contact(form).Err(), "phone is optional")

	form.Message = "short"
	form.Phone = "12"
	errs := Contact(form)
	assert.Equal(t, "Must be at least 10 characters", errs["message"])
	assert.Equal(t, MsgInvalidPhone, errs["phone"])

	form.Message = strings.Repeat("m", 501)
	assert.Equal(t, "Must be no more than 500 characters", Contact(form)["message"])
}

func TestTourBookingSchema(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	form := models.TourBooking{
		Name: "Jane Wanjiru", Email: "jane@example.com", Phone: "0712345678",
		Date: "2026-03-12", Time: "10:00", GroupSize: 4,
	}
	assert.Empty(t, TourBooking(form, now))

	form.Time = "12:00"
	form.GroupSize = 11
	form.Date = "2026-03-01"
	errs := TourBooking(form, now)
	assert.Equal(t, "Must be one of 10:00, 14:00", errs["time"])
	assert.Equal(t, "Must be no more than 10", errs["groupSize"])
	assert.Equal(t, MsgFutureDate, errs["date"])

	form.GroupSize = 0
	assert.Equal(t, "Must be at least 1", TourBooking(form, now)["groupSize"])
}

func TestShippingSchemaReportsFirstFailurePerField(t *testing.T) {
	errs := Shipping(models.ShippingDetails{Email: "bad"})
	assert.Equal(t, MsgRequired, errs["fullName"])
	assert.Equal(t, MsgInvalidEmail, errs["email"])
	assert.Equal(t, MsgRequired, errs["phone"])
	assert.Equal(t, MsgRequired, errs["address"])
	assert.NotContains(t, errs, "postalCode")
}

func TestErrorsAsError(t *testing.T) {
	err := Shipping(models.ShippingDetails{}).Err()
	require.Error(t, err)

	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, MsgRequired, verrs["city"])
	assert.True(t, strings.HasPrefix(err.Error(), "validation failed: address: "))
}

func TestTourTimesMatchBookingRule(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	form := models.TourBooking{
		Name: "Jane Wanjiru", Email: "jane@example.com", Phone: "0712345678",
		Date: "2026-03-12", GroupSize: 1,
	}
	for _, slot := range TourTimes {
		form.Time = slot
		assert.Empty(t, TourBooking(form, now), slot)
	}
}
