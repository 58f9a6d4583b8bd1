package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidPrice    = errors.New("product price must be positive")
	ErrInvalidDiscount = errors.New("discount price must be positive and below the base price")
	ErrNoSizes         = errors.New("product must list at least one size")
	ErrStockMismatch   = errors.New("stock entries must match the product's size list")

	// Size and gender parsing
	ErrUnknownSize   = errors.New("unknown size")
	ErrUnknownGender = errors.New("unknown gender")

	// Cart errors
	ErrNoSizeSelected  = errors.New("a size must be selected before adding to cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCart       = errors.New("cart is empty")

	// Stock errors
	ErrSizeNotStocked    = errors.New("size is not stocked for this product")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a decrement that exceeds current availability.
// It unwraps to ErrInsufficientStock so callers can match with errors.Is.
type InsufficientStockError struct {
	ProductID string
	Size      Size
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s size %s: requested %d, available %d",
		e.ProductID, e.Size, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
