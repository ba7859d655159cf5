package kernel

import (
	"strings"

	"mealbox/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // shared validator instance
var validate = validator.New(validator.WithRequiredStructEnabled())

// Email is a normalized (trimmed, lower-case) e-mail address. Customers are looked up by it.
type Email struct {
	value string
}

// NewEmail normalizes and validates an address.
func NewEmail(raw string) (Email, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if err := validate.Var(value, "email"); err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return Email{value: value}, nil
}

// RestoreEmail wraps an address read back from storage without validating it again.
func RestoreEmail(value string) Email {
	return Email{value: value}
}

// String returns the normalised address.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two normalised addresses.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// IsZero reports whether the e-mail was never set.
func (e Email) IsZero() bool {
	return e.value == ""
}
