package service

import (
	"slices"

	"storefront/internal/model"
)

// PlaceOrder freezes the resolvable cart lines into a pending order priced at
// the policy total, then clears the cart. Both happen under one lock.
func (e *Engine) PlaceOrder(customerName, customerEmail string) (model.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, lines := e.resolveCart()
	if len(lines) == 0 {
		e.logger.Debug().Int("cart_lines", e.cart.Len()).Msg("order placement refused, cart is empty")
		return model.Order{}, model.ErrEmptyCart
	}

	order := model.Order{
		ID:            e.newID(),
		Items:         lines,
		TotalAmount:   e.policy.Total(lines),
		Status:        model.OrderStatusPending,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		CreatedAt:     e.now(),
	}
	e.orders.Append(order)

	e.cart.Clear()
	e.persistCart()

	e.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Str("total", order.TotalAmount.String()).
		Msg("order placed successfully")

	return order.Clone(), nil
}

// UpdateOrderStatus changes the status of an order.
func (e *Engine) UpdateOrderStatus(id string, status model.OrderStatus) (model.Order, error) {
	if !status.Valid() {
		return model.Order{}, model.ErrInvalidStatus
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	order, ok := e.orders.GetByID(id)
	if !ok {
		e.logger.Debug().Str("order_id", id).Msg("status update of unknown order ignored")
		return model.Order{}, model.ErrOrderNotFound
	}

	if !order.Status.CanTransition(status, e.strictTransitions) {
		e.logger.Warn().
			Str("order_id", id).
			Str("from", string(order.Status)).
			Str("to", string(status)).
			Msg("order status transition refused")
		return model.Order{}, model.ErrInvalidTransition
	}

	e.orders.SetStatus(id, status)
	order.Status = status

	e.logger.Info().
		Str("order_id", id).
		Str("status", string(status)).
		Msg("order status updated")

	return order, nil
}

// GetOrder retrieves an order by its ID.
func (e *Engine) GetOrder(id string) (model.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, ok := e.orders.GetByID(id)
	if !ok {
		return model.Order{}, model.ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns the orders matching filter, newest first. Orders with the
// same timestamp are listed in reverse placement order.
func (e *Engine) ListOrders(filter model.OrderFilter) []model.Order {
	e.mu.Lock()
	all := e.orders.GetAll()
	e.mu.Unlock()

	orders := make([]model.Order, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if filter.Matches(all[i]) {
			orders = append(orders, all[i])
		}
	}

	slices.SortStableFunc(orders, func(a, b model.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return orders
}
