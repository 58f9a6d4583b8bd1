package services

import (
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/contracts"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
)

// CheckAvailability verifies that quantity units of (productID, size) can be
// satisfied by current stock. It is the single bounds check shared by the
// add-to-cart, update-quantity, and checkout paths so they cannot drift.
func CheckAvailability(stock contracts.StockView, productID string, size domain.Size, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	available, err := stock.Available(productID, size)
	if err != nil {
		return err
	}
	if quantity > available {
		return &domain.InsufficientStockError{
			ProductID: productID,
			Size:      size,
			Requested: quantity,
			Available: available,
		}
	}
	return nil
}
