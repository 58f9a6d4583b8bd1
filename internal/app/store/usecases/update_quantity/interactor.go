package update_quantity

import (
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/contracts"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain/services"
)

// Request contains the data needed to change a line's quantity.
type Request struct {
	ProductID string
	Size      string
	Quantity  int
}

// Interactor handles the update quantity use case.
type Interactor struct {
	stock contracts.StockView
	cart  *domain.Cart
}

// NewInteractor creates a new update quantity interactor.
func NewInteractor(stock contracts.StockView, cart *domain.Cart) *Interactor {
	return &Interactor{
		stock: stock,
		cart:  cart,
	}
}

// Execute sets the quantity of the (product, size) line after checking the
// new quantity against current stock. The cart recomputes its total from
// scratch on success.
func (i *Interactor) Execute(req *Request) error {
	size, err := domain.ParseSize(req.Size)
	if err != nil {
		return err
	}

	if err := services.CheckAvailability(i.stock, req.ProductID, size, req.Quantity); err != nil {
		return err
	}

	return i.cart.UpdateQuantity(req.ProductID, size, req.Quantity)
}
