package kernel

import (
	"mealbox/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits monetary values are compared and stored at.
const MoneyScale int32 = 2

// Money is a fixed-point monetary amount backed by shopspring/decimal.
// Amounts are never compared with floating point equality.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney wraps an exact decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromString parses a decimal literal such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return Money{amount: amount}, nil
}

// MustMoney is MoneyFromString for literals known to be valid. It panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying exact amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies the amount by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// FitsScale reports whether the amount has no non-zero digits past MoneyScale.
func (m Money) FitsScale() bool {
	return m.amount.Equal(m.amount.Round(MoneyScale))
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equal compares both amounts after rounding to MoneyScale.
func (m Money) Equal(other Money) bool {
	return m.amount.Round(MoneyScale).Equal(other.amount.Round(MoneyScale))
}

// String renders the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// MarshalJSON renders the amount as a JSON number with MoneyScale digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both quoted and unquoted decimal literals.
func (m *Money) UnmarshalJSON(data []byte) error {
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(data); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	m.amount = amount
	return nil
}
