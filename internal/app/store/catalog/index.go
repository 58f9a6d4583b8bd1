package catalog

import "github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"

// Index is an ID lookup over a loaded catalog. It preserves catalog order
// for listing.
type Index struct {
	products []*domain.Product
	byID     map[string]*domain.Product
}

// NewIndex builds an Index over the given products.
func NewIndex(products []*domain.Product) *Index {
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}
	return &Index{products: products, byID: byID}
}

// Find returns the product with the given ID.
func (ix *Index) Find(productID string) (*domain.Product, error) {
	p, ok := ix.byID[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// All returns every product in catalog order.
func (ix *Index) All() []*domain.Product {
	return append([]*domain.Product(nil), ix.products...)
}
