package domain

import (
	"fmt"
	"math/big"
)

// Money is a monetary amount in EGP with exact decimal arithmetic on big.Rat.
// Cart totals are recomputed from line items on every mutation, so the
// representation must not accumulate floating-point error.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(40000, 100) represents 400.00 EGP.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromUnits creates a Money from whole currency units.
func NewMoneyFromUnits(units int64) *Money {
	return &Money{rat: big.NewRat(units, 1)}
}

// Zero returns a zero Money value.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Add returns m + other as a new Money.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns m - other as a new Money.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyInt returns m * n as a new Money. Used for unit price times quantity.
func (m *Money) MultiplyInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, big.NewRat(n, 1))}
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the amount is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the amount is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan returns true if m < other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// Equals returns true if m and other are the same amount.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 value (display only, not calculations).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the amount with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
