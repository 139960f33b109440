package repository

import (
	"storefront/internal/model"
)

// productRepository implements ProductRepository with an ordered slice and an index.
type productRepository struct {
	products []model.Product
	index    map[string]int
}

// NewProductRepository creates an in-memory product repository seeded with products.
func NewProductRepository(products ...model.Product) ProductRepository {
	r := &productRepository{
		products: make([]model.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		r.Create(p)
	}
	return r
}

// GetAll returns every product in insertion order.
func (r *productRepository) GetAll() []model.Product {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(id string) (model.Product, bool) {
	i, ok := r.index[id]
	if !ok {
		return model.Product{}, false
	}
	return r.products[i], true
}

// Create appends a product.
func (r *productRepository) Create(product model.Product) {
	if i, ok := r.index[product.ID]; ok {
		r.products[i] = product
		return
	}
	r.index[product.ID] = len(r.products)
	r.products = append(r.products, product)
}

// Update replaces the product with the same ID.
func (r *productRepository) Update(product model.Product) bool {
	i, ok := r.index[product.ID]
	if !ok {
		return false
	}
	r.products[i] = product
	return true
}

// Delete removes the product with the given ID.
func (r *productRepository) Delete(id string) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}

	r.products = append(r.products[:i], r.products[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.products); j++ {
		r.index[r.products[j].ID] = j
	}
	return true
}
