package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money", func(t *testing.T) {
		m, err := NewMoney(40000, 100)
		require.NoError(t, err)
		assert.Equal(t, "400.00", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyFromUnits(400)
	b := NewMoneyFromUnits(50)

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "450.00", a.Add(b).String())
	})

	t.Run("subtract", func(t *testing.T) {
		assert.Equal(t, "350.00", a.Subtract(b).String())
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		assert.Equal(t, "1200.00", a.MultiplyInt(3).String())
	})

	t.Run("operations do not mutate operands", func(t *testing.T) {
		a.Add(b)
		a.MultiplyInt(7)
		assert.Equal(t, "400.00", a.String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyFromUnits(380)
	b := NewMoneyFromUnits(450)

	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.True(t, a.Equals(NewMoneyFromUnits(380)))
	assert.True(t, Zero().IsZero())
	assert.True(t, a.IsPositive())
	assert.True(t, Zero().Subtract(a).IsNegative())
}

func TestMoney_Copy(t *testing.T) {
	a := NewMoneyFromUnits(100)
	c := a.Copy()
	require.True(t, a.Equals(c))

	// Mutating through arithmetic never touches the original
	c = c.Add(NewMoneyFromUnits(1))
	assert.False(t, a.Equals(c))
	assert.Equal(t, "100.00", a.String())
}
