package service

import (
	"cmp"
	"slices"
	"strings"

	"storefront/internal/model"
)

// GetProduct retrieves a single product by ID.
func (e *Engine) GetProduct(id string) (model.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, ok := e.products.GetByID(id)
	if !ok {
		e.logger.Debug().Str("product_id", id).Msg("product not found")
		return model.Product{}, model.ErrProductNotFound
	}
	return product, nil
}

// ListProducts returns the products matching filter. Without a sort key the
// catalogue order is kept.
func (e *Engine) ListProducts(filter model.ProductFilter) []model.Product {
	e.mu.Lock()
	all := e.products.GetAll()
	e.mu.Unlock()

	products := make([]model.Product, 0, len(all))
	for _, p := range all {
		if filter.Matches(p) {
			products = append(products, p)
		}
	}

	switch filter.Sort {
	case model.SortPriceAsc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case model.SortPriceDesc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case model.SortNewest:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case model.SortName:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}

	return products
}

// Categories returns the distinct non-empty categories in catalogue order.
func (e *Engine) Categories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range e.products.GetAll() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// AddProduct creates a product with a fresh ID.
func (e *Engine) AddProduct(input model.ProductInput) (model.Product, error) {
	if err := input.Validate(); err != nil {
		e.logger.Warn().Str("name", input.Name).Msg("invalid product input")
		return model.Product{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	product := model.Product{
		ID:          e.newID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Inventory:   input.Inventory,
		Image:       input.Image,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	e.products.Create(product)

	e.logger.Info().
		Str("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

// UpdateProduct replaces every mutable field of the stored product with the
// same ID. ID and CreatedAt are kept from the stored record.
func (e *Engine) UpdateProduct(product model.Product) (model.Product, error) {
	if err := product.Input().Validate(); err != nil {
		e.logger.Warn().Str("product_id", product.ID).Msg("invalid product update")
		return model.Product{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	existing, ok := e.products.GetByID(product.ID)
	if !ok {
		e.logger.Debug().Str("product_id", product.ID).Msg("update of unknown product ignored")
		return model.Product{}, model.ErrProductNotFound
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = e.now()
	e.products.Update(product)

	e.logger.Info().Str("product_id", product.ID).Msg("product updated")

	return product, nil
}

// DeleteProduct removes a product. Cart lines and orders referencing it are
// left untouched.
func (e *Engine) DeleteProduct(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.products.Delete(id) {
		e.logger.Debug().Str("product_id", id).Msg("delete of unknown product ignored")
		return model.ErrProductNotFound
	}

	e.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
