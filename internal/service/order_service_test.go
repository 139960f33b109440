package service

import (
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_PlaceOrder(t *testing.T) {
	e := newTestEngine(t, func(o *Options) { o.NewID = sequentialIDs("order") })
	require.NoError(t, e.AddToCart("P1", 3))

	expectedTotal := e.Cart().Total

	order, err := e.PlaceOrder("Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "Ada Lovelace", order.CustomerName)
	assert.Equal(t, "ada@example.com", order.CustomerEmail)
	assert.True(t, order.TotalAmount.Equal(expectedTotal))
	assert.True(t, order.TotalAmount.Equal(dec("42.40")), "total includes tax and shipping")
	require.Len(t, order.Items, 1)
	assert.Equal(t, model.CartLine{ProductID: "P1", Quantity: 3, Price: dec("10.00")}, order.Items[0])
	assert.False(t, order.CreatedAt.IsZero())

	assert.Empty(t, e.Cart().Items, "cart is cleared by placement")

	stored, err := e.GetOrder("order-1")
	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestEngine_PlaceOrder_IsolatedFromLaterChanges(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddToCart("P1", 2))
	order, err := e.PlaceOrder("Ada", "ada@example.com")
	require.NoError(t, err)

	current, err := e.GetProduct("P1")
	require.NoError(t, err)
	current.Price = dec("99.00")
	_, err = e.UpdateProduct(current)
	require.NoError(t, err)
	require.NoError(t, e.DeleteProduct("P1"))
	require.NoError(t, e.AddToCart("P3", 1))

	// Mutating the returned copy must not reach the stored order either.
	order.Items[0].Quantity = 1000

	stored, err := e.GetOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.True(t, stored.Items[0].Price.Equal(dec("10.00")))
	assert.True(t, stored.TotalAmount.Equal(dec("31.60")))
}

func TestEngine_PlaceOrder_EmptyCart(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.PlaceOrder("Ada", "ada@example.com")
	assert.ErrorIs(t, err, model.ErrEmptyCart)
	assert.Empty(t, e.ListOrders(model.OrderFilter{}))
}

func TestEngine_PlaceOrder_OnlyDanglingLines(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddToCart("P2", 1))
	require.NoError(t, e.DeleteProduct("P2"))

	_, err := e.PlaceOrder("Ada", "ada@example.com")
	assert.ErrorIs(t, err, model.ErrEmptyCart)
	assert.Empty(t, e.ListOrders(model.OrderFilter{}))
	assert.Len(t, e.Cart().Items, 1, "refused placement leaves the cart untouched")
}

func TestEngine_PlaceOrder_SkipsDanglingLines(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddToCart("P1", 1))
	require.NoError(t, e.AddToCart("P2", 1))
	require.NoError(t, e.DeleteProduct("P2"))

	order, err := e.PlaceOrder("Ada", "ada@example.com")
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "P1", order.Items[0].ProductID)
	assert.True(t, order.TotalAmount.Equal(dec("20.80")))
	assert.Empty(t, e.Cart().Items)
}

func TestEngine_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name        string
		strict      bool
		steps       []model.OrderStatus
		expectError error
		final       model.OrderStatus
	}{
		{name: "Complete", steps: []model.OrderStatus{model.OrderStatusCompleted}, final: model.OrderStatusCompleted},
		{name: "Permissive reopen", steps: []model.OrderStatus{model.OrderStatusCancelled, model.OrderStatusPending}, final: model.OrderStatusPending},
		{name: "Strict complete", strict: true, steps: []model.OrderStatus{model.OrderStatusCompleted}, final: model.OrderStatusCompleted},
		{name: "Strict same state", strict: true, steps: []model.OrderStatus{model.OrderStatusCancelled, model.OrderStatusCancelled}, final: model.OrderStatusCancelled},
		{
			name:        "Strict refuses leaving a final state",
			strict:      true,
			steps:       []model.OrderStatus{model.OrderStatusCompleted, model.OrderStatusCancelled},
			expectError: model.ErrInvalidTransition,
			final:       model.OrderStatusCompleted,
		},
		{name: "Unknown status", steps: []model.OrderStatus{"shipped"}, expectError: model.ErrInvalidStatus, final: model.OrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, func(o *Options) { o.StrictTransitions = tt.strict })
			require.NoError(t, e.AddToCart("P1", 1))
			order, err := e.PlaceOrder("Ada", "ada@example.com")
			require.NoError(t, err)

			for _, status := range tt.steps {
				_, err = e.UpdateOrderStatus(order.ID, status)
			}
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
			}

			stored, err := e.GetOrder(order.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.final, stored.Status)
			assert.True(t, stored.TotalAmount.Equal(order.TotalAmount), "only the status changes")
		})
	}
}

func TestEngine_UpdateOrderStatus_UnknownOrder(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.UpdateOrderStatus("missing", model.OrderStatusCompleted)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestEngine_GetOrder_NotFound(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.GetOrder("missing")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestEngine_ListOrders(t *testing.T) {
	seeded := []model.Order{
		{ID: "seed-old", CustomerName: "Grace Hopper", CustomerEmail: "grace@navy.mil", Status: model.OrderStatusCompleted, CreatedAt: baseTime.Add(-48 * time.Hour)},
		{ID: "seed-new", CustomerName: "Alan Turing", CustomerEmail: "alan@bletchley.uk", Status: model.OrderStatusPending, CreatedAt: baseTime.Add(time.Hour * 24 * 365)},
	}
	e := newTestEngine(t, func(o *Options) {
		o.Orders = seeded
		o.NewID = sequentialIDs("order")
	})

	require.NoError(t, e.AddToCart("P1", 1))
	_, err := e.PlaceOrder("Ada Lovelace", "ada@example.com")
	require.NoError(t, err)
	require.NoError(t, e.AddToCart("P1", 1))
	_, err = e.PlaceOrder("Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	ids := func(orders []model.Order) []string {
		out := make([]string, len(orders))
		for i, o := range orders {
			out[i] = o.ID
		}
		return out
	}

	tests := []struct {
		name     string
		filter   model.OrderFilter
		expected []string
	}{
		{name: "Newest first", filter: model.OrderFilter{}, expected: []string{"seed-new", "order-2", "order-1", "seed-old"}},
		{name: "Status", filter: model.OrderFilter{Status: model.OrderStatusCompleted}, expected: []string{"seed-old"}},
		{name: "Name search", filter: model.OrderFilter{Search: "ada"}, expected: []string{"order-2", "order-1"}},
		{name: "Email search", filter: model.OrderFilter{Search: "BLETCHLEY"}, expected: []string{"seed-new"}},
		{name: "Id search", filter: model.OrderFilter{Search: "order-2"}, expected: []string{"order-2"}},
		{name: "Combined", filter: model.OrderFilter{Search: "ada", Status: model.OrderStatusCancelled}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(e.ListOrders(tt.filter)))
		})
	}
}
