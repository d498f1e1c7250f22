package kernel

import (
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
)

// toleranceMinorUnits is the comparison tolerance for currency amounts.
// One minor unit corresponds to 0.01 of the major unit, the rounding slack
// permitted when reconciling client-supplied totals with recomputed ones.
const toleranceMinorUnits = 1

// Money is an immutable fixed-point currency amount stored in minor units
// (e.g. kobo, cents). The zero value is a valid zero amount, so Money carries
// no constructor guard. Arithmetic never rounds; only comparisons apply the
// 0.01 tolerance.
type Money struct {
	amount int64
}

// NewMoneyFromFloat converts a major-unit decimal (as received on the wire)
// into Money, rounding to the nearest minor unit. Negative amounts are
// rejected: externally supplied prices, totals, and fees are always
// non-negative.
func NewMoneyFromFloat(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	if value < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", value))
	}
	return Money{amount: int64(math.Round(value * 100))}, nil
}

// MoneyFromMinorUnits restores Money from its persisted minor-unit
// representation. Used by repositories when rehydrating aggregates.
func MoneyFromMinorUnits(amount int64) Money {
	return Money{amount: amount}
}

// MinorUnits returns the amount in minor units for persistence.
func (m Money) MinorUnits() int64 {
	return m.amount
}

// Float64 returns the amount in major units. For display only; comparisons
// must go through the Money methods.
func (m Money) Float64() float64 {
	return float64(m.amount) / 100
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of the two amounts. The result may be negative;
// callers enforcing non-negativity check IsNegative on the result.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount - other.amount}
}

// MulQuantity returns the amount multiplied by a line-item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount * int64(quantity)}
}

// GreaterThan reports whether m exceeds other (exact, no tolerance).
func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// LessThan reports whether m is below other (exact, no tolerance).
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// IsEqual reports exact equality of the two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// WithinToleranceOf reports whether the two amounts differ by at most one
// minor unit. This is the only comparison permitted when reconciling
// client-supplied figures against server-recomputed ones.
func (m Money) WithinToleranceOf(other Money) bool {
	diff := m.amount - other.amount
	if diff < 0 {
		diff = -diff
	}
	return diff <= toleranceMinorUnits
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String formats the amount in major units with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}
