package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/contracts"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
	"github.com/AhmedELNajjar-dev/Journey/internal/pkg/clock"
)

// ErrUnknownChannel is returned when the requested delivery channel is not
// registered.
var ErrUnknownChannel = errors.New("unknown delivery channel")

// Request contains the validated-at-the-boundary checkout input: the
// customer form and the name of the channel the user picked.
type Request struct {
	Customer domain.CustomerInfo
	Channel  string
}

// Interactor orchestrates checkout: validate the form, reserve stock for
// every cart line all-or-nothing, compose the order message, clear the cart,
// and deliver the message over exactly one channel.
type Interactor struct {
	stock    *domain.StockLedger
	cart     *domain.Cart
	channels map[string]contracts.MessageChannel
	clock    clock.Clock
}

// NewInteractor creates a new checkout interactor.
func NewInteractor(
	stock *domain.StockLedger,
	cart *domain.Cart,
	channels []contracts.MessageChannel,
	clk clock.Clock,
) *Interactor {
	byName := make(map[string]contracts.MessageChannel, len(channels))
	for _, ch := range channels {
		byName[ch.Name()] = ch
	}
	return &Interactor{
		stock:    stock,
		cart:     cart,
		channels: byName,
		clock:    clk,
	}
}

// Execute runs the checkout flow. Validation and stock errors are returned
// before any state changes, so a failed checkout leaves the cart, the
// ledger, and the form recoverable. Once stock is reserved the cart is
// cleared and the composed order is returned even if delivery fails; the
// caller can retry delivery with the same message.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Order, error) {
	// 1. Validate customer info
	if err := req.Customer.Validate(); err != nil {
		return nil, err
	}

	if i.cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	channel, ok := i.channels[req.Channel]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, req.Channel)
	}

	// 2. Snapshot the order before mutating anything
	order, err := domain.NewOrder(uuid.New().String(), req.Customer, i.cart, i.clock.Now())
	if err != nil {
		return nil, err
	}

	// 3. Reserve stock for every line, all-or-nothing
	lines := make([]domain.StockLine, 0, len(order.Lines()))
	for _, line := range order.Lines() {
		lines = append(lines, domain.StockLine{
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}
	if err := i.stock.DecrementAll(lines); err != nil {
		return nil, err
	}

	// 4. Commit: clear the cart and hand off the message
	message := order.ComposeMessage()
	i.cart.Clear()

	if err := channel.Deliver(ctx, message); err != nil {
		return order, fmt.Errorf("order %s committed but delivery failed: %w", order.ID(), err)
	}
	return order, nil
}
