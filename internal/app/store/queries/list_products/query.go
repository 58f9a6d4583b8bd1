package list_products

import (
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/contracts"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain/services"
)

// Request contains raw filter tokens from the presentation layer. Empty
// strings mean the field is not filtered.
type Request struct {
	Gender      string
	Size        string
	Color       string
	SearchQuery string
}

// Query handles the product listing with filtering and search.
type Query struct {
	products []*domain.Product
	stock    contracts.StockView
}

// NewQuery creates a new list products query over the loaded catalog.
func NewQuery(products []*domain.Product, stock contracts.StockView) *Query {
	return &Query{
		products: products,
		stock:    stock,
	}
}

// Execute parses the filter tokens and returns the matching products in
// catalog order. Unknown gender or size tokens are rejected at the boundary
// rather than silently matching nothing.
func (q *Query) Execute(req *Request) ([]*domain.Product, error) {
	criteria := services.Criteria{
		Color:       req.Color,
		SearchQuery: req.SearchQuery,
	}

	if req.Gender != "" {
		gender, err := domain.ParseGender(req.Gender)
		if err != nil {
			return nil, err
		}
		criteria.Gender = gender
	}
	if req.Size != "" {
		size, err := domain.ParseSize(req.Size)
		if err != nil {
			return nil, err
		}
		criteria.Size = size
	}

	return services.FilterProducts(q.products, q.stock, criteria), nil
}
