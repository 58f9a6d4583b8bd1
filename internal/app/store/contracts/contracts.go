// Package contracts defines the interfaces between the storefront core and
// its collaborators: the stock view consumed by read paths and the outbound
// messaging channels that carry a composed order out of the system.
package contracts

import (
	"context"

	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
)

// StockView is the read side of the stock ledger. The filter predicate and
// the availability checks depend on this instead of the concrete ledger so
// they stay pure and testable.
type StockView interface {
	// Available returns the remaining count for (productID, size)
	Available(productID string, size domain.Size) (int, error)
}

// ProductFinder resolves catalog products by ID.
type ProductFinder interface {
	// Find returns the product, or domain.ErrProductNotFound
	Find(productID string) (*domain.Product, error)
}

// MessageChannel delivers a composed order message over one external
// channel: a messaging-app deep link or the clipboard. Exactly one channel
// fires per checkout.
type MessageChannel interface {
	// Name identifies the channel ("whatsapp", "instagram", "clipboard")
	Name() string

	// Deliver hands the message off; it does not validate or mutate state
	Deliver(ctx context.Context, message string) error
}
