package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	engine := service.NewEngine(context.Background(), nil, service.Options{
		Policy:           pricing.DefaultPolicy(),
		EnforceInventory: true,
		Products: []model.Product{
			{ID: "P1", Name: "Mouse", Price: decimal.RequireFromString("10.00"), Inventory: 3, Category: "Electronics"},
		},
	}, logger)

	return New(
		handler.NewProductHandler(engine, engine, logger),
		handler.NewCartHandler(engine, engine, logger),
		handler.NewOrderHandler(engine, engine, logger),
		logger,
	)
}

func TestRouter_Routes(t *testing.T) {
	server := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"list products", http.MethodGet, "/api/products", "", http.StatusOK},
		{"get product", http.MethodGet, "/api/products/P1", "", http.StatusOK},
		{"unknown product", http.MethodGet, "/api/products/P9", "", http.StatusNotFound},
		{"categories", http.MethodGet, "/api/categories", "", http.StatusOK},
		{"get cart", http.MethodGet, "/api/cart", "", http.StatusOK},
		{"add to cart", http.MethodPost, "/api/cart/items", `{"productId":"P1","quantity":1}`, http.StatusOK},
		{"update line", http.MethodPut, "/api/cart/items/P1", `{"quantity":2}`, http.StatusOK},
		{"remove absent line", http.MethodDelete, "/api/cart/items/P9", "", http.StatusOK},
		{"list orders", http.MethodGet, "/api/orders", "", http.StatusOK},
		{"unknown order", http.MethodGet, "/api/orders/nope", "", http.StatusNotFound},
		{"unknown order status", http.MethodPut, "/api/admin/orders/nope/status", `{"status":"completed"}`, http.StatusNotFound},
		{"create product", http.MethodPost, "/api/admin/products", `{"name":"Pad","price":"3.50"}`, http.StatusCreated},
		{"wrong method", http.MethodPost, "/api/products", "", http.StatusMethodNotAllowed},
		{"unknown path", http.MethodGet, "/api/nothing", "", http.StatusNotFound},
		{"preflight", http.MethodOptions, "/api/cart", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			server.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}
