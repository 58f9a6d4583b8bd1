package domain

// StockLine names one (product, size, quantity) demand against the ledger,
// used for batch decrements at checkout.
type StockLine struct {
	ProductID string
	Size      Size
	Quantity  int
}

// StockLedger tracks remaining inventory per product per size for one
// session. It is seeded from the catalog at session start and only ever
// decreases; there is no restock operation.
type StockLedger struct {
	counts map[string]map[Size]int
}

// NewStockLedger seeds a ledger from the catalog's load-time stock counts.
func NewStockLedger(products []*Product) *StockLedger {
	counts := make(map[string]map[Size]int, len(products))
	for _, p := range products {
		perSize := make(map[Size]int, len(p.Sizes()))
		for _, size := range p.Sizes() {
			if n, ok := p.InitialStock(size); ok {
				perSize[size] = n
			}
		}
		counts[p.ID()] = perSize
	}
	return &StockLedger{counts: counts}
}

// Available returns the remaining count for (productID, size).
func (l *StockLedger) Available(productID string, size Size) (int, error) {
	perSize, ok := l.counts[productID]
	if !ok {
		return 0, ErrProductNotFound
	}
	n, ok := perSize[size]
	if !ok {
		return 0, ErrSizeNotStocked
	}
	return n, nil
}

// Decrement reduces the count for (productID, size) by quantity.
// A decrement that would go negative fails with *InsufficientStockError
// and leaves the count untouched.
func (l *StockLedger) Decrement(productID string, size Size, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	available, err := l.Available(productID, size)
	if err != nil {
		return err
	}
	if quantity > available {
		return &InsufficientStockError{
			ProductID: productID,
			Size:      size,
			Requested: quantity,
			Available: available,
		}
	}
	l.counts[productID][size] = available - quantity
	return nil
}

// DecrementAll applies a batch of decrements atomically: every line is
// checked against current counts before any count is touched, so a failing
// line leaves the whole ledger unchanged.
func (l *StockLedger) DecrementAll(lines []StockLine) error {
	type key struct {
		productID string
		size      Size
	}
	demand := make(map[key]int, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return ErrInvalidQuantity
		}
		available, err := l.Available(line.ProductID, line.Size)
		if err != nil {
			return err
		}
		k := key{line.ProductID, line.Size}
		demand[k] += line.Quantity
		if demand[k] > available {
			return &InsufficientStockError{
				ProductID: line.ProductID,
				Size:      line.Size,
				Requested: demand[k],
				Available: available,
			}
		}
	}
	for _, line := range lines {
		l.counts[line.ProductID][line.Size] -= line.Quantity
	}
	return nil
}
