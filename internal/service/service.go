package service

import (
	"context"

	"storefront/internal/model"
)

// CatalogReader defines read operations on the product catalogue.
type CatalogReader interface {
	// GetProduct retrieves a single product by ID.
	GetProduct(id string) (model.Product, error)

	// ListProducts returns the products matching filter.
	ListProducts(filter model.ProductFilter) []model.Product

	// Categories returns the distinct product categories in catalogue order.
	Categories() []string
}

// CatalogWriter defines admin mutations of the product catalogue.
type CatalogWriter interface {
	AddProduct(input model.ProductInput) (model.Product, error)
	UpdateProduct(product model.Product) (model.Product, error)
	DeleteProduct(id string) error
}

// CartReader exposes the current cart.
type CartReader interface {
	// Cart returns every line resolved against the catalogue, with totals.
	Cart() model.CartSummary
}

// CartWriter defines cart mutations.
type CartWriter interface {
	AddToCart(productID string, quantity int) error
	UpdateCartItemQuantity(productID string, quantity int) error
	RemoveFromCart(productID string)
	ClearCart()
}

// OrderReader defines read operations on placed orders.
type OrderReader interface {
	// GetOrder retrieves an order by its ID.
	GetOrder(id string) (model.Order, error)

	// ListOrders returns the orders matching filter, newest first.
	ListOrders(filter model.OrderFilter) []model.Order
}

// OrderWriter defines checkout and order administration.
type OrderWriter interface {
	// PlaceOrder turns the cart into a pending order and clears the cart.
	PlaceOrder(customerName, customerEmail string) (model.Order, error)

	// UpdateOrderStatus changes the status of an existing order.
	UpdateOrderStatus(id string, status model.OrderStatus) (model.Order, error)
}

// Store is the full set of engine capabilities.
type Store interface {
	CatalogReader
	CatalogWriter
	CartReader
	CartWriter
	OrderReader
	OrderWriter
}

// CartPersister stores cart snapshots outside the process.
type CartPersister interface {
	// Restore returns the stored cart, or an empty cart if none is readable.
	Restore(ctx context.Context) []model.CartLine

	// Submit queues a snapshot for writing without blocking on I/O.
	Submit(lines []model.CartLine)

	// Close flushes the last snapshot.
	Close(ctx context.Context) error
}
