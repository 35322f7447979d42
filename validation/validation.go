// Package validation checks user-entered form fields and reports failures
// per field, the way the storefront forms display them.
package validation

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	MsgRequired      = "This field is required"
	MsgInvalidEmail  = "Please enter a valid email address"
	MsgInvalidPhone  = "Please enter a valid Kenyan phone number"
	MsgMobileMoney   = "Please enter a valid Kenyan phone number (e.g., +254712345678, 0712345678)"
	MsgFutureDate    = "Please select a future date"
	MsgInvalidDate   = "Please select a valid date"
	NameMinLength    = 2
	NameMaxLength    = 50
	MaxMessageLength = 500
	MinMessageLength = 10
	MaxTourGroupSize = 10
	dateLayout       = "2006-01-02"
)

// TourTimes are the slots a farm tour can be booked for. The TourBooking
// model's oneof tag lists the same values.
var TourTimes = []string{"10:00", "14:00"}

var (
	kenyanPhonePattern = regexp.MustCompile(`^(\+254|0)[17]\d{8}$`)
	mobileMoneyPattern = regexp.MustCompile(`^(\+254|254|0)[17]\d{8}$`)
	phoneNoise         = regexp.MustCompile(`[\s\-()]`)
	scriptTag          = regexp.MustCompile(`(?is)<script\b[^<]*(?:<[^<]*)*?</script>`)
)

var validate = newValidator()

type nowKey struct{}

// newValidator builds the validator the form schemas share. Fields are
// reported under their json names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("notblank", validators.NotBlank))
	must(v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return nameMessage(fl.Field().String()) == ""
	}))
	// Blank phones are left to notblank, so optional phone fields need no omitempty.
	must(v.RegisterValidation("kenyan_phone", func(fl validator.FieldLevel) bool {
		phone := fl.Field().String()
		return strings.TrimSpace(phone) == "" || IsKenyanPhone(phone)
	}))
	must(v.RegisterValidation("mpesa_phone", func(fl validator.FieldLevel) bool {
		return mobileMoneyPattern.MatchString(CleanPhone(fl.Field().String()))
	}))
	must(v.RegisterValidationCtx("future_date", func(ctx context.Context, fl validator.FieldLevel) bool {
		return dateMessage(fl.Field().String(), nowFrom(ctx)) == ""
	}))
	return v
}

// withNow fixes the day future_date compares against.
func withNow(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, nowKey{}, now)
}

func nowFrom(ctx context.Context) time.Time {
	if now, ok := ctx.Value(nowKey{}).(time.Time); ok {
		return now
	}
	return time.Now()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// check validates s and turns the failures into one message per field.
func check(ctx context.Context, s any) Errors {
	errs := Errors{}
	err := validate.StructCtx(ctx, s)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = message(ctx, fe)
	}
	return errs
}

func message(ctx context.Context, fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return MsgRequired
	case "email":
		return MsgInvalidEmail
	case "kenyan_phone":
		return MsgInvalidPhone
	case "mpesa_phone":
		return MsgMobileMoney
	case "person_name":
		return nameMessage(fe.Value().(string))
	case "future_date":
		return dateMessage(fe.Value().(string), nowFrom(ctx))
	case "oneof":
		return "Must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.String {
			return "Must be at least " + fe.Param() + " characters"
		}
		return "Must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "Must be no more than " + fe.Param() + " characters"
		}
		return "Must be no more than " + fe.Param()
	}
	return "Invalid value"
}

func nameMessage(value string) string {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	switch {
	case n == 0:
		return ""
	case n < NameMinLength:
		return "Name must be at least " + strconv.Itoa(NameMinLength) + " characters"
	case n > NameMaxLength:
		return "Name must be less than " + strconv.Itoa(NameMaxLength) + " characters"
	}
	return ""
}

// dateMessage accepts YYYY-MM-DD dates from today onwards, in local time.
func dateMessage(value string, now time.Time) string {
	if value == "" {
		return ""
	}
	day, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return MsgInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return MsgFutureDate
	}
	return ""
}

// CleanPhone strips spaces, dashes and parentheses.
func CleanPhone(phone string) string {
	return phoneNoise.ReplaceAllString(phone, "")
}

func IsKenyanPhone(phone string) bool {
	return kenyanPhonePattern.MatchString(CleanPhone(phone))
}

// NormalizePhone rewrites a Kenyan number into +254 form. Input it cannot
// interpret comes back unchanged.
func NormalizePhone(phone string) string {
	cleaned := CleanPhone(phone)
	switch {
	case strings.HasPrefix(cleaned, "+254"):
		return cleaned
	case strings.HasPrefix(cleaned, "254"):
		return "+" + cleaned
	case strings.HasPrefix(cleaned, "0"):
		return "+254" + cleaned[1:]
	}
	return phone
}

// Sanitize trims value and strips embedded script elements.
func Sanitize(value string) string {
	return scriptTag.ReplaceAllString(strings.TrimSpace(value), "")
}
