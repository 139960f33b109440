package handler

import (
	"storefront/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogReader and CatalogWriter.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetProduct(id string) (model.Product, error) {
	args := m.Called(id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockCatalogService) ListProducts(filter model.ProductFilter) []model.Product {
	args := m.Called(filter)
	return args.Get(0).([]model.Product)
}

func (m *MockCatalogService) Categories() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockCatalogService) AddProduct(input model.ProductInput) (model.Product, error) {
	args := m.Called(input)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(product model.Product) (model.Product, error) {
	args := m.Called(product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCartService is a mock implementation of CartReader and CartWriter.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Cart() model.CartSummary {
	args := m.Called()
	return args.Get(0).(model.CartSummary)
}

func (m *MockCartService) AddToCart(productID string, quantity int) error {
	args := m.Called(productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) UpdateCartItemQuantity(productID string, quantity int) error {
	args := m.Called(productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) RemoveFromCart(productID string) {
	m.Called(productID)
}

func (m *MockCartService) ClearCart() {
	m.Called()
}

// MockOrderService is a mock implementation of OrderReader and OrderWriter.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetOrder(id string) (model.Order, error) {
	args := m.Called(id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(filter model.OrderFilter) []model.Order {
	args := m.Called(filter)
	return args.Get(0).([]model.Order)
}

func (m *MockOrderService) PlaceOrder(customerName, customerEmail string) (model.Order, error) {
	args := m.Called(customerName, customerEmail)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(id string, status model.OrderStatus) (model.Order, error) {
	args := m.Called(id, status)
	return args.Get(0).(model.Order), args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
