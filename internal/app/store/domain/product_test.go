package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, id string, stock map[Size]int) *Product {
	t.Helper()
	sizes := make([]Size, 0, len(stock))
	for _, s := range AllSizes() {
		if _, ok := stock[s]; ok {
			sizes = append(sizes, s)
		}
	}
	p, err := NewProduct(
		id, "Classic Journey Hoodie", "Our signature hoodie",
		NewMoneyFromUnits(400), nil,
		[]string{"/images/products/hoodie1-front.jpg"},
		sizes, GenderUnisex, "offwhite", stock,
	)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	price := NewMoneyFromUnits(400)
	stock := map[Size]int{SizeL: 20, SizeXL: 8}
	sizes := []Size{SizeL, SizeXL}

	t.Run("valid product creation", func(t *testing.T) {
		p, err := NewProduct("1", "Classic Journey Hoodie", "Signature hoodie",
			price, nil, nil, sizes, GenderUnisex, "offwhite", stock)
		require.NoError(t, err)
		assert.Equal(t, "1", p.ID())
		assert.Equal(t, "Classic Journey Hoodie", p.Name())
		assert.True(t, p.HasSize(SizeL))
		assert.False(t, p.HasSize(SizeXXL))
	})

	t.Run("empty name returns error", func(t *testing.T) {
		_, err := NewProduct("1", "", "d", price, nil, nil, sizes, GenderUnisex, "black", stock)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("non-positive price returns error", func(t *testing.T) {
		_, err := NewProduct("1", "Hoodie", "d", Zero(), nil, nil, sizes, GenderUnisex, "black", stock)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("discount at or above price returns error", func(t *testing.T) {
		_, err := NewProduct("1", "Hoodie", "d", price, NewMoneyFromUnits(400), nil, sizes, GenderUnisex, "black", stock)
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("no sizes returns error", func(t *testing.T) {
		_, err := NewProduct("1", "Hoodie", "d", price, nil, nil, nil, GenderUnisex, "black", nil)
		assert.ErrorIs(t, err, ErrNoSizes)
	})

	t.Run("stock keys must match the size list", func(t *testing.T) {
		_, err := NewProduct("1", "Hoodie", "d", price, nil, nil, sizes, GenderUnisex, "black",
			map[Size]int{SizeL: 20})
		assert.ErrorIs(t, err, ErrStockMismatch)

		_, err = NewProduct("1", "Hoodie", "d", price, nil, nil, sizes, GenderUnisex, "black",
			map[Size]int{SizeL: 20, SizeXXL: 3})
		assert.ErrorIs(t, err, ErrStockMismatch)
	})

	t.Run("negative stock count returns error", func(t *testing.T) {
		_, err := NewProduct("1", "Hoodie", "d", price, nil, nil, sizes, GenderUnisex, "black",
			map[Size]int{SizeL: 20, SizeXL: -1})
		assert.ErrorIs(t, err, ErrStockMismatch)
	})
}

func TestProduct_EffectivePrice(t *testing.T) {
	stock := map[Size]int{SizeL: 10}
	sizes := []Size{SizeL}

	t.Run("without discount returns base price", func(t *testing.T) {
		p, err := NewProduct("1", "Hoodie", "d", NewMoneyFromUnits(450), nil, nil,
			sizes, GenderMale, "beige", stock)
		require.NoError(t, err)
		assert.True(t, p.EffectivePrice().Equals(NewMoneyFromUnits(450)))
	})

	t.Run("with discount returns discount price", func(t *testing.T) {
		p, err := NewProduct("1", "Hoodie", "d", NewMoneyFromUnits(450), NewMoneyFromUnits(380), nil,
			sizes, GenderMale, "beige", stock)
		require.NoError(t, err)
		assert.True(t, p.EffectivePrice().Equals(NewMoneyFromUnits(380)))
		assert.True(t, p.Price().Equals(NewMoneyFromUnits(450)))
	})
}

func TestProduct_InitialStock(t *testing.T) {
	p := newTestProduct(t, "1", map[Size]int{SizeL: 4, SizeXXL: 0})

	n, ok := p.InitialStock(SizeL)
	require.True(t, ok)
	assert.Equal(t, 4, n)

	n, ok = p.InitialStock(SizeXXL)
	require.True(t, ok)
	assert.Equal(t, 0, n)

	_, ok = p.InitialStock(SizeXL)
	assert.False(t, ok)
}
