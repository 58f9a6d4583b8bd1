package services

import (
	"fmt"

	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/catalog"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/contracts"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/queries/list_products"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/usecases/add_to_cart"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/usecases/checkout"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/usecases/remove_from_cart"
	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/usecases/update_quantity"
	"github.com/AhmedELNajjar-dev/Journey/internal/pkg/clock"
	"github.com/AhmedELNajjar-dev/Journey/internal/transport/messenger"
)

// Store contact points for outbound order messages.
const (
	WhatsAppRecipient = "201117571023"
	InstagramHandle   = "a.mamdouh_elnajjar_"
)

// Shipping is charged as a flat fee per order.
const shippingCostUnits = 50

// Config customizes session wiring. The zero value uses the embedded
// catalog, the real clock, and the store's production channels.
type Config struct {
	// CatalogYAML overrides the embedded catalog data when non-nil
	CatalogYAML []byte

	// Clock overrides the real clock (tests use clock.MockClock)
	Clock clock.Clock

	// Channels overrides the default WhatsApp/Instagram/clipboard set
	Channels []contracts.MessageChannel
}

// Session owns all mutable state for one storefront session and wires the
// use cases around it. State is memory-only and lost when the session ends.
// Sessions are single-user and not safe for concurrent use.
type Session struct {
	Catalog *catalog.Index
	Stock   *domain.StockLedger
	Cart    *domain.Cart

	AddToCart      *add_to_cart.Interactor
	RemoveFromCart *remove_from_cart.Interactor
	UpdateQuantity *update_quantity.Interactor
	Checkout       *checkout.Interactor

	ListProducts *list_products.Query
}

// NewSession loads the catalog, seeds the stock ledger, and wires up all
// use cases for one session.
func NewSession(cfg Config) (*Session, error) {
	// 1. Load the catalog
	var products []*domain.Product
	var err error
	if cfg.CatalogYAML != nil {
		products, err = catalog.Parse(cfg.CatalogYAML)
	} else {
		products, err = catalog.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	index := catalog.NewIndex(products)

	// 2. Create infrastructure components
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewRealClock()
	}
	channels := cfg.Channels
	if channels == nil {
		channels = []contracts.MessageChannel{
			messenger.NewWhatsAppChannel(WhatsAppRecipient),
			messenger.NewInstagramChannel(InstagramHandle),
			messenger.NewClipboardChannel(),
		}
	}

	// 3. Seed the session ledgers
	stock := domain.NewStockLedger(products)
	cart := domain.NewCart(domain.NewMoneyFromUnits(shippingCostUnits))

	// 4. Wire use cases and queries
	return &Session{
		Catalog:        index,
		Stock:          stock,
		Cart:           cart,
		AddToCart:      add_to_cart.NewInteractor(index, stock, cart),
		RemoveFromCart: remove_from_cart.NewInteractor(cart),
		UpdateQuantity: update_quantity.NewInteractor(stock, cart),
		Checkout:       checkout.NewInteractor(stock, cart, channels, clk),
		ListProducts:   list_products.NewQuery(index.All(), stock),
	}, nil
}
