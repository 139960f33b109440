package repository

import (
	"storefront/internal/model"
)

// orderRepository implements OrderRepository. Stored orders are deep copies so
// callers can never alias an order's items.
type orderRepository struct {
	orders []model.Order
	index  map[string]int
}

// NewOrderRepository creates an in-memory order repository seeded with orders.
func NewOrderRepository(orders ...model.Order) OrderRepository {
	r := &orderRepository{
		orders: make([]model.Order, 0, len(orders)),
		index:  make(map[string]int, len(orders)),
	}
	for _, o := range orders {
		r.Append(o)
	}
	return r
}

// Append stores a new order.
func (r *orderRepository) Append(order model.Order) {
	r.index[order.ID] = len(r.orders)
	r.orders = append(r.orders, order.Clone())
}

// GetByID retrieves an order by its ID.
func (r *orderRepository) GetByID(id string) (model.Order, bool) {
	i, ok := r.index[id]
	if !ok {
		return model.Order{}, false
	}
	return r.orders[i].Clone(), true
}

// GetAll returns every order in placement order.
func (r *orderRepository) GetAll() []model.Order {
	out := make([]model.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = o.Clone()
	}
	return out
}

// SetStatus changes the status of an order.
func (r *orderRepository) SetStatus(id string, status model.OrderStatus) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.orders[i].Status = status
	return true
}

// Len returns the number of orders.
func (r *orderRepository) Len() int {
	return len(r.orders)
}
