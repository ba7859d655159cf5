package order

import (
	"fmt"
	"strings"

	"mealbox/internal/pkg/errs"
)

// PaymentMethod is how the customer pays. The core only carries it through.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	Cash
	Card
	BankTransfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // UnknownPaymentMethod is never accepted
	return map[PaymentMethod]string{
		Cash:         "cash",
		Card:         "card",
		BankTransfer: "bank_transfer",
	}
}

// ParsePaymentMethod reads a payment method name at the API boundary.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for method, str := range getPaymentMethodStrings() {
		if str == name {
			return method, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid", fmt.Errorf("%q is not a valid payment method", s))
}

// PaymentMethodFromStored reads a persisted name, mapping unknown names to UnknownPaymentMethod.
func PaymentMethodFromStored(s string) PaymentMethod {
	method, err := ParsePaymentMethod(s)
	if err != nil {
		return UnknownPaymentMethod
	}
	return method
}

// Validate returns a validation error for values outside the closed set.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the wire form, e.g. "bank_transfer".
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// MarshalText renders the wire form.
func (p PaymentMethod) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses the wire form through ParsePaymentMethod.
func (p *PaymentMethod) UnmarshalText(data []byte) error {
	parsed, err := ParsePaymentMethod(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
