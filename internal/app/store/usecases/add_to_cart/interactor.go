package add_to_cart

import (
	"fmt"

	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/contracts"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain/services"
)

// Request contains the data needed to add one unit to the cart.
type Request struct {
	ProductID string
	Size      string
}

// Interactor handles the add to cart use case.
type Interactor struct {
	products contracts.ProductFinder
	stock    contracts.StockView
	cart     *domain.Cart
}

// NewInteractor creates a new add to cart interactor.
func NewInteractor(products contracts.ProductFinder, stock contracts.StockView, cart *domain.Cart) *Interactor {
	return &Interactor{
		products: products,
		stock:    stock,
		cart:     cart,
	}
}

// Execute adds one unit of the product in the selected size to the cart.
// The size token is parsed at the boundary and the merged line quantity is
// checked against current stock before the cart is touched.
func (i *Interactor) Execute(req *Request) error {
	if req.Size == "" {
		return domain.ErrNoSizeSelected
	}
	size, err := domain.ParseSize(req.Size)
	if err != nil {
		return err
	}

	product, err := i.products.Find(req.ProductID)
	if err != nil {
		return err
	}
	if !product.HasSize(size) {
		return domain.ErrSizeNotStocked
	}

	wanted := i.cart.Quantity(product.ID(), size) + 1
	if err := services.CheckAvailability(i.stock, product.ID(), size, wanted); err != nil {
		return err
	}

	if err := i.cart.Add(product, size); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	return nil
}
