// Package services holds stateless domain services: the catalog filter
// predicate and the shared availability check.
package services

import (
	"strings"

	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/contracts"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
)

// Criteria is the set of active filters. Zero values mean "not filtering
// on this field"; an entirely zero Criteria passes the whole catalog.
type Criteria struct {
	Gender      domain.Gender
	Size        domain.Size
	Color       string
	SearchQuery string
}

// FilterProducts returns the products matching the criteria, preserving
// catalog order. Search and field filters conjoin: a product must pass both.
//
// The size filter is stock-aware: selecting a size hides products whose
// remaining count for that size is zero, even when the size is listed.
func FilterProducts(products []*domain.Product, stock contracts.StockView, criteria Criteria) []*domain.Product {
	matched := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, stock, criteria.SearchQuery) {
			continue
		}
		if criteria.Gender != "" && p.Gender() != criteria.Gender {
			continue
		}
		if criteria.Color != "" && p.Color() != criteria.Color {
			continue
		}
		if criteria.Size != "" && !sizeInStock(p, stock, criteria.Size) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// matchesSearch reports whether the product matches the free-text query.
// A query that is exactly a size token narrows to a stock-aware size match,
// so searching "l" does not surface sold-out L-only items.
func matchesSearch(p *domain.Product, stock contracts.StockView, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	// An exact size token is a size lookup, not a substring search: it must
	// not surface sold-out items just because "xl" appears in a description.
	if size, err := domain.ParseSize(query); err == nil {
		return sizeInStock(p, stock, size)
	}

	if strings.Contains(strings.ToLower(p.Name()), query) ||
		strings.Contains(strings.ToLower(p.Description()), query) ||
		strings.Contains(strings.ToLower(string(p.Gender())), query) ||
		strings.Contains(strings.ToLower(p.Color()), query) {
		return true
	}

	for _, size := range p.Sizes() {
		if strings.Contains(strings.ToLower(string(size)), query) {
			return true
		}
	}
	return false
}

// sizeInStock reports whether the product lists the size and still has
// stock for it.
func sizeInStock(p *domain.Product, stock contracts.StockView, size domain.Size) bool {
	if !p.HasSize(size) {
		return false
	}
	available, err := stock.Available(p.ID(), size)
	if err != nil {
		return false
	}
	return available > 0
}
