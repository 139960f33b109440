package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from s to next. Without
// strict mode every transition between valid statuses is allowed; strict mode
// only lets pending orders complete or cancel.
func (s OrderStatus) CanTransition(next OrderStatus, strict bool) bool {
	if !next.Valid() {
		return false
	}
	if !strict || s == next {
		return true
	}
	return s == OrderStatusPending
}

// Order is a frozen snapshot of a checked-out cart.
type Order struct {
	ID            string          `json:"id" yaml:"id"`
	Items         []CartLine      `json:"items" yaml:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount" yaml:"totalAmount"`
	Status        OrderStatus     `json:"status" yaml:"status"`
	CustomerName  string          `json:"customerName" yaml:"customerName"`
	CustomerEmail string          `json:"customerEmail" yaml:"customerEmail"`
	CreatedAt     time.Time       `json:"createdAt" yaml:"createdAt"`
}

// Clone returns a deep copy of o.
func (o Order) Clone() Order {
	o.Items = append([]CartLine(nil), o.Items...)
	return o
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// UpdateOrderStatusRequest is the admin status change payload.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Search string
	Status OrderStatus
}

// Matches reports whether o passes the filter.
func (f OrderFilter) Matches(o Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(o.CustomerName), term) ||
		strings.Contains(strings.ToLower(o.CustomerEmail), term) ||
		strings.Contains(o.ID, f.Search)
}
