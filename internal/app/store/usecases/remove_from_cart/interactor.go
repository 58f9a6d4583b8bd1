package remove_from_cart

import (
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
)

// Request identifies the cart line to remove.
type Request struct {
	ProductID string
	Size      string
}

// Interactor handles the remove from cart use case.
type Interactor struct {
	cart *domain.Cart
}

// NewInteractor creates a new remove from cart interactor.
func NewInteractor(cart *domain.Cart) *Interactor {
	return &Interactor{cart: cart}
}

// Execute removes the (product, size) line. Removing a line that is not in
// the cart is a no-op.
func (i *Interactor) Execute(req *Request) error {
	size, err := domain.ParseSize(req.Size)
	if err != nil {
		return err
	}
	i.cart.Remove(req.ProductID, size)
	return nil
}
