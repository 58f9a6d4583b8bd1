package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/contracts"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
	"github.com/AhmedELNajjar-dev/Journey/internal/pkg/clock"
)

type fakeChannel struct {
	name      string
	delivered []string
	err       error
}

func (f *fakeChannel) Name() string { return f.name }

func (f *fakeChannel) Deliver(_ context.Context, message string) error {
	if f.err != nil {
		return f.err
	}
	f.delivered = append(f.delivered, message)
	return nil
}

type env struct {
	interactor *Interactor
	cart       *domain.Cart
	stock      *domain.StockLedger
	whatsapp   *fakeChannel
	clipboard  *fakeChannel
}

func mustProduct(t *testing.T, id, name string, stock map[domain.Size]int) *domain.Product {
	t.Helper()
	sizes := make([]domain.Size, 0, len(stock))
	for _, s := range domain.AllSizes() {
		if _, ok := stock[s]; ok {
			sizes = append(sizes, s)
		}
	}
	p, err := domain.NewProduct(id, name, "d",
		domain.NewMoneyFromUnits(400), nil, nil, sizes, domain.GenderUnisex, "black", stock)
	require.NoError(t, err)
	return p
}

func setup(t *testing.T) *env {
	t.Helper()
	productA := mustProduct(t, "1", "Classic Journey Hoodie", map[domain.Size]int{domain.SizeL: 4})
	productB := mustProduct(t, "2", "Urban Explorer Hoodie", map[domain.Size]int{domain.SizeXL: 2})

	cart := domain.NewCart(domain.NewMoneyFromUnits(50))
	require.NoError(t, cart.Add(productA, domain.SizeL))
	require.NoError(t, cart.Add(productB, domain.SizeXL))

	stock := domain.NewStockLedger([]*domain.Product{productA, productB})
	whatsapp := &fakeChannel{name: "whatsapp"}
	clipboard := &fakeChannel{name: "clipboard"}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	return &env{
		interactor: NewInteractor(stock, cart, []contracts.MessageChannel{whatsapp, clipboard}, clk),
		cart:       cart,
		stock:      stock,
		whatsapp:   whatsapp,
		clipboard:  clipboard,
	}
}

func validRequest() *Request {
	return &Request{
		Customer: domain.CustomerInfo{
			Name:    "Ahmed Mamdouh",
			Phone:   "01012345678",
			Address: "12 Corniche Street, Alexandria",
		},
		Channel: "whatsapp",
	}
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("successful checkout commits stock, clears cart, delivers once", func(t *testing.T) {
		e := setup(t)
		order, err := e.interactor.Execute(ctx, validRequest())
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.NotEmpty(t, order.ID())
		assert.True(t, order.GrandTotal().Equals(domain.NewMoneyFromUnits(850)))

		n, _ := e.stock.Available("1", domain.SizeL)
		assert.Equal(t, 3, n)
		n, _ = e.stock.Available("2", domain.SizeXL)
		assert.Equal(t, 1, n)

		assert.True(t, e.cart.IsEmpty())
		require.Len(t, e.whatsapp.delivered, 1)
		assert.Empty(t, e.clipboard.delivered)

		message := e.whatsapp.delivered[0]
		assert.True(t, strings.HasPrefix(message, "New Order:"))
		assert.Contains(t, message, "Classic Journey Hoodie (Size: L, Quantity: 1)")
		assert.Contains(t, message, "Urban Explorer Hoodie (Size: XL, Quantity: 1)")
		assert.Contains(t, message, "Shipping: 50.00 EGP")
		assert.Contains(t, message, "Total: 850.00 EGP")
	})

	t.Run("invalid customer info blocks everything", func(t *testing.T) {
		e := setup(t)
		req := validRequest()
		req.Customer.Phone = "0101234567"

		_, err := e.interactor.Execute(ctx, req)
		require.Error(t, err)

		var fields domain.FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "phone")

		n, _ := e.stock.Available("1", domain.SizeL)
		assert.Equal(t, 4, n)
		assert.Len(t, e.cart.Items(), 2)
		assert.Empty(t, e.whatsapp.delivered)
	})

	t.Run("insufficient stock on one line rolls back the whole order", func(t *testing.T) {
		e := setup(t)
		// demand 3 of product 2 XL; only 2 in stock
		require.NoError(t, e.cart.UpdateQuantity("2", domain.SizeXL, 3))

		_, err := e.interactor.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		var insufficient *domain.InsufficientStockError
		require.True(t, errors.As(err, &insufficient))
		assert.Equal(t, "2", insufficient.ProductID)
		assert.Equal(t, 2, insufficient.Available)

		// no line was decremented, cart is untouched
		n, _ := e.stock.Available("1", domain.SizeL)
		assert.Equal(t, 4, n)
		n, _ = e.stock.Available("2", domain.SizeXL)
		assert.Equal(t, 2, n)
		assert.Len(t, e.cart.Items(), 2)
		assert.Empty(t, e.whatsapp.delivered)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		e := setup(t)
		e.cart.Clear()
		_, err := e.interactor.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("unknown channel is rejected before any mutation", func(t *testing.T) {
		e := setup(t)
		req := validRequest()
		req.Channel = "telegram"

		_, err := e.interactor.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrUnknownChannel)

		n, _ := e.stock.Available("1", domain.SizeL)
		assert.Equal(t, 4, n)
		assert.Len(t, e.cart.Items(), 2)
	})

	t.Run("clipboard channel delivers the same message", func(t *testing.T) {
		e := setup(t)
		req := validRequest()
		req.Channel = "clipboard"

		_, err := e.interactor.Execute(ctx, req)
		require.NoError(t, err)
		assert.Len(t, e.clipboard.delivered, 1)
		assert.Empty(t, e.whatsapp.delivered)
	})

	t.Run("delivery failure still returns the committed order", func(t *testing.T) {
		e := setup(t)
		e.whatsapp.err = errors.New("no browser")

		order, err := e.interactor.Execute(ctx, validRequest())
		require.Error(t, err)
		require.NotNil(t, order)

		// stock and cart are committed; the caller can retry delivery
		n, _ := e.stock.Available("1", domain.SizeL)
		assert.Equal(t, 3, n)
		assert.True(t, e.cart.IsEmpty())
		assert.NotEmpty(t, order.ComposeMessage())
	})
}
