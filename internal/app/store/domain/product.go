package domain

// Product is a catalog entry. The catalog is fixed at load time and
// read-only afterwards; remaining availability lives in the StockLedger.
type Product struct {
	id            string
	name          string
	description   string
	price         *Money
	discountPrice *Money
	images        []string
	sizes         []Size
	gender        Gender
	color         string
	stock         map[Size]int
}

// NewProduct creates a Product, validating the catalog invariants:
// positive price, discount below price when present, and stock entries
// covering exactly the listed sizes.
func NewProduct(
	id, name, description string,
	price, discountPrice *Money,
	images []string,
	sizes []Size,
	gender Gender,
	color string,
	stock map[Size]int,
) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price == nil || !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if discountPrice != nil && (!discountPrice.IsPositive() || !discountPrice.LessThan(price)) {
		return nil, ErrInvalidDiscount
	}
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}
	if len(stock) != len(sizes) {
		return nil, ErrStockMismatch
	}
	for _, size := range sizes {
		count, ok := stock[size]
		if !ok || count < 0 {
			return nil, ErrStockMismatch
		}
	}

	stockCopy := make(map[Size]int, len(stock))
	for size, count := range stock {
		stockCopy[size] = count
	}

	p := &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price.Copy(),
		images:      append([]string(nil), images...),
		sizes:       append([]Size(nil), sizes...),
		gender:      gender,
		color:       color,
		stock:       stockCopy,
	}
	if discountPrice != nil {
		p.discountPrice = discountPrice.Copy()
	}
	return p, nil
}

// Getters
func (p *Product) ID() string          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() *Money       { return p.price.Copy() }
func (p *Product) Images() []string    { return append([]string(nil), p.images...) }
func (p *Product) Sizes() []Size       { return append([]Size(nil), p.sizes...) }
func (p *Product) Gender() Gender      { return p.gender }
func (p *Product) Color() string       { return p.color }

// DiscountPrice returns the discounted unit price, or nil when no discount
// is set.
func (p *Product) DiscountPrice() *Money {
	if p.discountPrice == nil {
		return nil
	}
	return p.discountPrice.Copy()
}

// EffectivePrice returns the discount price when present, else the base price.
func (p *Product) EffectivePrice() *Money {
	if p.discountPrice != nil {
		return p.discountPrice.Copy()
	}
	return p.price.Copy()
}

// HasSize reports whether the product is carried in the given size.
func (p *Product) HasSize(size Size) bool {
	for _, s := range p.sizes {
		if s == size {
			return true
		}
	}
	return false
}

// InitialStock returns the load-time stock count for a size, used to seed
// the StockLedger.
func (p *Product) InitialStock(size Size) (int, bool) {
	count, ok := p.stock[size]
	return count, ok
}
