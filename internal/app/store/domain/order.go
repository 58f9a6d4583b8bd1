package domain

import (
	"fmt"
	"strings"
	"time"
)

// OrderLine is an immutable snapshot of one cart line at checkout time.
type OrderLine struct {
	ProductID   string
	ProductName string
	Size        Size
	Quantity    int
	UnitPrice   *Money
}

// Order is the result of a committed checkout: the customer, the purchased
// lines, and the totals frozen at commit time.
type Order struct {
	id         string
	customer   CustomerInfo
	lines      []OrderLine
	subtotal   *Money
	shipping   *Money
	grandTotal *Money
	placedAt   time.Time

	events []DomainEvent
}

// NewOrder freezes a validated cart and customer form into an Order.
func NewOrder(id string, customer CustomerInfo, cart *Cart, placedAt time.Time) (*Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := cart.Items()
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderLine{
			ProductID:   item.Product().ID(),
			ProductName: item.Product().Name(),
			Size:        item.Size(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.Product().EffectivePrice(),
		})
	}

	subtotal := cart.Total()
	shipping := cart.ShippingCost()
	grandTotal := subtotal.Add(shipping)

	o := &Order{
		id:         id,
		customer:   customer,
		lines:      lines,
		subtotal:   subtotal,
		shipping:   shipping,
		grandTotal: grandTotal,
		placedAt:   placedAt,
		events:     make([]DomainEvent, 0),
	}
	o.recordEvent(&OrderPlacedEvent{
		OrderID:    id,
		GrandTotal: grandTotal.Copy(),
		PlacedAt:   placedAt,
	})
	return o, nil
}

// Getters
func (o *Order) ID() string                  { return o.id }
func (o *Order) Customer() CustomerInfo      { return o.customer }
func (o *Order) Lines() []OrderLine          { return append([]OrderLine(nil), o.lines...) }
func (o *Order) Subtotal() *Money            { return o.subtotal.Copy() }
func (o *Order) Shipping() *Money            { return o.shipping.Copy() }
func (o *Order) GrandTotal() *Money          { return o.grandTotal.Copy() }
func (o *Order) PlacedAt() time.Time         { return o.placedAt }
func (o *Order) DomainEvents() []DomainEvent { return o.events }

// ComposeMessage renders the deterministic order text handed to the
// messaging channels.
func (o *Order) ComposeMessage() string {
	var b strings.Builder

	b.WriteString("New Order:\n\n")
	b.WriteString("Customer Details:\n")
	fmt.Fprintf(&b, "Name: %s\n", o.customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", o.customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n", o.customer.Address)
	fmt.Fprintf(&b, "Additional Info: %s\n\n", o.customer.AdditionalInfo)

	b.WriteString("Order Items:\n")
	for _, line := range o.lines {
		fmt.Fprintf(&b, "%s (Size: %s, Quantity: %d)\n", line.ProductName, line.Size, line.Quantity)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s EGP\n", o.subtotal)
	fmt.Fprintf(&b, "Shipping: %s EGP\n", o.shipping)
	fmt.Fprintf(&b, "Total: %s EGP", o.grandTotal)

	return b.String()
}

// recordEvent adds a domain event to the list of events.
func (o *Order) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}
