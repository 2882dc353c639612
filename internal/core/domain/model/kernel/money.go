package kernel

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in cents.
// It is used for dish base prices, option surcharges, and order totals.
//
// Money is immutable; arithmetic returns new values. The zero value represents
// zero cents and is valid, so amounts can be accumulated starting from
// kernel.ZeroMoney().
//
// Example:
//
//	base, _ := kernel.NewMoneyFromCents(1000)
//	extra, _ := kernel.NewMoneyFromCents(200)
//	total := base.Add(extra) // 1200 cents
type Money struct {
	cents int64
}

// ZeroMoney returns a zero amount, the identity element for Add.
func ZeroMoney() Money {
	return Money{}
}

// NewMoneyFromCents creates a Money from an amount in cents.
// Negative amounts are rejected.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts. Since both operands are non-negative
// the result always is as well.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is zero cents.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as dollars with two decimal places, e.g. "12.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
