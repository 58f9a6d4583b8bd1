package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ItemAddedEvent is emitted when a line item is added or merged into the cart.
type ItemAddedEvent struct {
	ProductID string
	Size      Size
	Quantity  int
}

func (e *ItemAddedEvent) EventType() string {
	return "cart.item.added"
}

func (e *ItemAddedEvent) AggregateID() string {
	return e.ProductID
}

// ItemRemovedEvent is emitted when a line item is removed from the cart.
type ItemRemovedEvent struct {
	ProductID string
	Size      Size
}

func (e *ItemRemovedEvent) EventType() string {
	return "cart.item.removed"
}

func (e *ItemRemovedEvent) AggregateID() string {
	return e.ProductID
}

// QuantityUpdatedEvent is emitted when a line item's quantity changes.
type QuantityUpdatedEvent struct {
	ProductID string
	Size      Size
	Quantity  int
}

func (e *QuantityUpdatedEvent) EventType() string {
	return "cart.quantity.updated"
}

func (e *QuantityUpdatedEvent) AggregateID() string {
	return e.ProductID
}

// CartClearedEvent is emitted when the cart is emptied.
type CartClearedEvent struct{}

func (e *CartClearedEvent) EventType() string {
	return "cart.cleared"
}

func (e *CartClearedEvent) AggregateID() string {
	return ""
}

// OrderPlacedEvent is emitted when a checkout commits.
type OrderPlacedEvent struct {
	OrderID    string
	GrandTotal *Money
	PlacedAt   time.Time
}

func (e *OrderPlacedEvent) EventType() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) AggregateID() string {
	return e.OrderID
}
