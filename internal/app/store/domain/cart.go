package domain

// CartItem is one line of the cart: a product in a selected size with a
// quantity. Lines are uniquely keyed by (product ID, size).
type CartItem struct {
	product  *Product
	size     Size
	quantity int
}

// Product returns the line's product.
func (ci *CartItem) Product() *Product { return ci.product }

// Size returns the selected size.
func (ci *CartItem) Size() Size { return ci.size }

// Quantity returns the line quantity.
func (ci *CartItem) Quantity() int { return ci.quantity }

// LineTotal returns effective unit price times quantity.
func (ci *CartItem) LineTotal() *Money {
	return ci.product.EffectivePrice().MultiplyInt(int64(ci.quantity))
}

// Cart is the session's shopping cart aggregate. Lines keep insertion order;
// the running total is recomputed from the lines after every mutation rather
// than adjusted by deltas.
//
// The cart does not check stock itself. Availability bounds are enforced by
// the use-case layer through services.CheckAvailability before dispatching
// into the cart.
type Cart struct {
	items        []*CartItem
	total        *Money
	shippingCost *Money

	events []DomainEvent
}

// NewCart creates an empty cart with the given shipping cost.
func NewCart(shippingCost *Money) *Cart {
	return &Cart{
		items:        make([]*CartItem, 0),
		total:        Zero(),
		shippingCost: shippingCost.Copy(),
		events:       make([]DomainEvent, 0),
	}
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []*CartItem {
	return append([]*CartItem(nil), c.items...)
}

// Total returns the running total over all lines.
func (c *Cart) Total() *Money {
	return c.total.Copy()
}

// ShippingCost returns the fixed shipping fee. It survives Clear.
func (c *Cart) ShippingCost() *Money {
	return c.shippingCost.Copy()
}

// Quantity returns the quantity of the (productID, size) line, or 0 when
// the line does not exist.
func (c *Cart) Quantity(productID string, size Size) int {
	if item := c.find(productID, size); item != nil {
		return item.quantity
	}
	return 0
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Add puts one unit of the product in the given size into the cart.
// An existing (product, size) line is incremented instead of duplicated.
func (c *Cart) Add(product *Product, size Size) error {
	if product == nil {
		return ErrProductNotFound
	}
	if size == "" {
		return ErrNoSizeSelected
	}

	if item := c.find(product.ID(), size); item != nil {
		item.quantity++
		c.recompute()
		c.recordEvent(&ItemAddedEvent{ProductID: product.ID(), Size: size, Quantity: item.quantity})
		return nil
	}

	c.items = append(c.items, &CartItem{product: product, size: size, quantity: 1})
	c.recompute()
	c.recordEvent(&ItemAddedEvent{ProductID: product.ID(), Size: size, Quantity: 1})
	return nil
}

// Remove deletes the (productID, size) line. Removing a line that does not
// exist is a no-op.
func (c *Cart) Remove(productID string, size Size) {
	for i, item := range c.items {
		if item.product.ID() == productID && item.size == size {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.recompute()
			c.recordEvent(&ItemRemovedEvent{ProductID: productID, Size: size})
			return
		}
	}
}

// UpdateQuantity sets the quantity of the (productID, size) line.
// Callers validate the new quantity against stock beforehand.
func (c *Cart) UpdateQuantity(productID string, size Size, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	item := c.find(productID, size)
	if item == nil {
		return ErrProductNotFound
	}
	item.quantity = quantity
	c.recompute()
	c.recordEvent(&QuantityUpdatedEvent{ProductID: productID, Size: size, Quantity: quantity})
	return nil
}

// Clear empties the cart and resets the total. The shipping cost is kept.
func (c *Cart) Clear() {
	c.items = make([]*CartItem, 0)
	c.total = Zero()
	c.recordEvent(&CartClearedEvent{})
}

// DomainEvents returns the recorded events.
func (c *Cart) DomainEvents() []DomainEvent {
	return c.events
}

// ClearEvents clears all recorded domain events (called after publishing).
func (c *Cart) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

// find returns the line for (productID, size), or nil.
func (c *Cart) find(productID string, size Size) *CartItem {
	for _, item := range c.items {
		if item.product.ID() == productID && item.size == size {
			return item
		}
	}
	return nil
}

// recompute rebuilds the total from scratch over all lines.
func (c *Cart) recompute() {
	total := Zero()
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	c.total = total
}

// recordEvent adds a domain event to the list of events.
func (c *Cart) recordEvent(event DomainEvent) {
	c.events = append(c.events, event)
}
