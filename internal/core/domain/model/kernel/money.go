package kernel

import (
	"fmt"
	"math"

	"freightbroker/internal/pkg/errs"
)

// ErrMoneyIsNegative is returned when constructing Money from a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object representing a monetary amount in centavos.
// All prices in the engine (proposal prices, agreed prices, regulatory
// floors, withdrawal fees) are Money values, so arithmetic never loses
// fractions of a cent and comparisons are exact.
//
// Money is immutable; arithmetic methods return new values. Multiplication
// by a float (rate × distance, rate × tonnage) rounds half away from zero to
// the nearest centavo, which matches the two-decimal contract of the
// regulatory rate tables.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates Money from an integer amount of centavos.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates Money from a float amount in currency units,
// rounded to two decimal places.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount in centavos.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulFloat returns the amount multiplied by f, rounded to the nearest centavo.
func (m Money) MulFloat(f float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * f))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimals, e.g. "1234.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
