// Package service implements the store engine: catalogue, cart and order
// operations behind a single serialization point.
package service

import (
	"context"
	"sync"
	"time"

	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures an Engine.
type Options struct {
	Policy pricing.Policy

	// EnforceInventory refuses cart quantities above the product's inventory.
	EnforceInventory bool

	// StrictTransitions only lets pending orders complete or cancel.
	StrictTransitions bool

	// Products and Orders seed the catalogue and the order book.
	Products []model.Product
	Orders   []model.Order

	// Clock and NewID default to time.Now and uuid.NewString.
	Clock func() time.Time
	NewID func() string
}

// Engine owns all store state. Every operation holds mu for its full
// duration, so readers always see the effect of completed writes.
type Engine struct {
	mu sync.Mutex

	products repository.ProductRepository
	cart     repository.CartRepository
	orders   repository.OrderRepository

	policy            pricing.Policy
	enforceInventory  bool
	strictTransitions bool
	now               func() time.Time
	newID             func() string

	persister CartPersister
	logger    zerolog.Logger
}

var _ Store = (*Engine)(nil)

// NewEngine seeds the catalogue and order book and restores the cart through
// persister. A nil persister keeps the cart in memory only.
func NewEngine(ctx context.Context, persister CartPersister, opts Options, logger zerolog.Logger) *Engine {
	e := &Engine{
		products:          repository.NewProductRepository(opts.Products...),
		cart:              repository.NewCartRepository(),
		orders:            repository.NewOrderRepository(opts.Orders...),
		policy:            opts.Policy,
		enforceInventory:  opts.EnforceInventory,
		strictTransitions: opts.StrictTransitions,
		now:               opts.Clock,
		newID:             opts.NewID,
		persister:         persister,
		logger:            logger.With().Str("service", "engine").Logger(),
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}

	if persister != nil {
		e.cart.Replace(persister.Restore(ctx))
	}

	e.logger.Info().
		Int("products", len(opts.Products)).
		Int("orders", e.orders.Len()).
		Int("cart_lines", e.cart.Len()).
		Bool("enforce_inventory", e.enforceInventory).
		Bool("strict_transitions", e.strictTransitions).
		Msg("store engine initialised")

	return e
}

// Close flushes the last cart snapshot.
func (e *Engine) Close(ctx context.Context) error {
	if e.persister == nil {
		return nil
	}
	return e.persister.Close(ctx)
}

// persistCart hands the current cart to the persister. Callers hold mu.
func (e *Engine) persistCart() {
	if e.persister != nil {
		e.persister.Submit(e.cart.Lines())
	}
}
