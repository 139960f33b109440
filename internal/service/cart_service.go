package service

import (
	"storefront/internal/model"
	"storefront/internal/pricing"
)

// AddToCart adds quantity units of a product. An existing line keeps its
// price snapshot; a new line captures the current catalogue price.
func (e *Engine) AddToCart(productID string, quantity int) error {
	if quantity < 1 {
		return model.ErrInvalidQuantity
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	product, ok := e.products.GetByID(productID)
	if !ok {
		e.logger.Debug().Str("product_id", productID).Msg("add of unknown product ignored")
		return model.ErrProductNotFound
	}

	line, exists := e.cart.Find(productID)
	if !exists {
		line = model.CartLine{ProductID: productID, Price: product.Price}
	}
	line.Quantity += quantity

	if e.enforceInventory && line.Quantity > product.Inventory {
		e.logger.Warn().
			Str("product_id", productID).
			Int("requested", line.Quantity).
			Int("inventory", product.Inventory).
			Msg("cart quantity exceeds inventory")
		return model.ErrInsufficientInventory
	}

	e.cart.Put(line)
	e.persistCart()

	e.logger.Debug().
		Str("product_id", productID).
		Int("quantity", line.Quantity).
		Msg("cart line added")

	return nil
}

// UpdateCartItemQuantity sets the quantity of an existing line. A quantity of
// zero or less removes the line.
func (e *Engine) UpdateCartItemQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		e.RemoveFromCart(productID)
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	line, ok := e.cart.Find(productID)
	if !ok {
		return model.ErrCartLineNotFound
	}

	// Lines whose product was deleted cannot be checked against inventory.
	if product, found := e.products.GetByID(productID); found && e.enforceInventory && quantity > product.Inventory {
		e.logger.Warn().
			Str("product_id", productID).
			Int("requested", quantity).
			Int("inventory", product.Inventory).
			Msg("cart quantity exceeds inventory")
		return model.ErrInsufficientInventory
	}

	line.Quantity = quantity
	e.cart.Put(line)
	e.persistCart()

	return nil
}

// RemoveFromCart deletes the line for productID if present.
func (e *Engine) RemoveFromCart(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cart.Remove(productID) {
		e.persistCart()
	}
}

// ClearCart empties the cart.
func (e *Engine) ClearCart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cart.Clear()
	e.persistCart()
}

// Cart returns the cart lines resolved against the catalogue. Lines whose
// product no longer exists are listed with a nil Product and left out of the
// totals and the item count.
func (e *Engine) Cart() model.CartSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	items, resolvable := e.resolveCart()
	return model.CartSummary{
		Items:     items,
		ItemCount: pricing.ItemCount(resolvable),
		Breakdown: e.policy.Quote(resolvable),
	}
}

// resolveCart pairs every line with its product. Callers hold mu.
func (e *Engine) resolveCart() ([]model.CartItem, []model.CartLine) {
	lines := e.cart.Lines()
	items := make([]model.CartItem, 0, len(lines))
	resolvable := make([]model.CartLine, 0, len(lines))

	for _, line := range lines {
		item := model.CartItem{CartLine: line}
		if product, ok := e.products.GetByID(line.ProductID); ok {
			item.Product = &product
			resolvable = append(resolvable, line)
		}
		items = append(items, item)
	}
	return items, resolvable
}
