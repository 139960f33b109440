// Package repository holds the in-memory collections behind the store engine.
// Implementations are not safe for concurrent use; callers serialize access.
package repository

import (
	"storefront/internal/model"
)

// ProductRepository defines the catalogue collection.
type ProductRepository interface {
	// GetAll returns every product in insertion order.
	GetAll() []model.Product

	// GetByID retrieves a single product by its ID.
	GetByID(id string) (model.Product, bool)

	// Create appends a product. An existing product with the same ID is replaced in place.
	Create(product model.Product)

	// Update replaces the product with the same ID. Returns false if none exists.
	Update(product model.Product) bool

	// Delete removes the product with the given ID. Returns false if none exists.
	Delete(id string) bool
}

// CartRepository defines the ordered cart line collection.
type CartRepository interface {
	// Lines returns a copy of the lines in insertion order.
	Lines() []model.CartLine

	// Find returns the line for productID.
	Find(productID string) (model.CartLine, bool)

	// Put replaces the line for line.ProductID, or appends it if absent.
	Put(line model.CartLine)

	// Remove deletes the line for productID. Returns false if none exists.
	Remove(productID string) bool

	// Replace swaps the whole collection.
	Replace(lines []model.CartLine)

	// Clear empties the collection.
	Clear()

	// Len returns the number of lines.
	Len() int
}

// OrderRepository defines the append-only order collection.
type OrderRepository interface {
	// Append stores a new order.
	Append(order model.Order)

	// GetByID retrieves an order by its ID.
	GetByID(id string) (model.Order, bool)

	// GetAll returns every order in placement order.
	GetAll() []model.Order

	// SetStatus changes the status of an order. Returns false if none exists.
	SetStatus(id string, status model.OrderStatus) bool

	// Len returns the number of orders.
	Len() int
}
