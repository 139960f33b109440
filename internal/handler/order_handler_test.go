package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrder(status model.OrderStatus) model.Order {
	return model.Order{
		ID: uuid.NewString(),
		Items: []model.CartLine{
			{ProductID: "P001", Quantity: 2, Price: dec("10.00")},
		},
		TotalAmount:   dec("32.00"),
		Status:        status,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		CreatedAt:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    model.PlaceOrderRequest{CustomerName: "Ada", CustomerEmail: "ada@example.com"},
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Empty cart",
			requestBody:    model.PlaceOrderRequest{CustomerName: "Ada", CustomerEmail: "ada@example.com"},
			mockError:      model.ErrEmptyCart,
			expectedStatus: http.StatusConflict,
			expectService:  true,
		},
		{
			name:           "Unexpected error",
			requestBody:    model.PlaceOrderRequest{CustomerName: "Ada", CustomerEmail: "ada@example.com"},
			mockError:      errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, mockService, logger)

			if tt.expectService {
				var placed model.Order
				if tt.mockError == nil {
					placed = testOrder(model.OrderStatusPending)
				}
				mockService.On("PlaceOrder", "Ada", "ada@example.com").Return(placed, tt.mockError)
			}

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
			}

			if tt.expectedStatus == http.StatusCreated {
				var resp model.Order
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, model.OrderStatusPending, resp.Status)
				assert.True(t, resp.TotalAmount.Equal(dec("32")))
				assert.Len(t, resp.Items, 1)
			}
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.Equal(t, model.ErrCodeInternalError, decodeError(t, w).Error)
			}
		})
	}
}

func TestOrderHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		queryParams    string
		expectedFilter *model.OrderFilter
		expectedStatus int
	}{
		{
			name:           "No filter",
			expectedFilter: &model.OrderFilter{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Search and status",
			queryParams:    "?search=ada&status=completed",
			expectedFilter: &model.OrderFilter{Search: "ada", Status: model.OrderStatusCompleted},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown status",
			queryParams:    "?status=shipped",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, mockService, logger)
			if tt.expectedFilter != nil {
				mockService.On("ListOrders", *tt.expectedFilter).Return([]model.Order{testOrder(model.OrderStatusCompleted)})
			}

			req := httptest.NewRequest(http.MethodGet, "/api/orders"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
			if tt.expectedFilter == nil {
				assert.Equal(t, model.ErrCodeInvalidStatus, decodeError(t, w).Error)
			}
		})
	}
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	found := testOrder(model.OrderStatusPending)

	tests := []struct {
		name           string
		orderID        string
		mockReturn     model.Order
		mockError      error
		expectedStatus int
	}{
		{name: "Success", orderID: found.ID, mockReturn: found, expectedStatus: http.StatusOK},
		{name: "Order not found", orderID: "missing", mockError: model.ErrOrderNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, mockService, logger)
			mockService.On("GetOrder", tt.orderID).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/orders/"+tt.orderID, nil)
			req.SetPathValue("id", tt.orderID)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)

			if tt.mockError == nil {
				var resp model.Order
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, found.ID, resp.ID)
			}
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		status         model.OrderStatus
		mockError      error
		expectService  bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			body:           `{"status":"completed"}`,
			status:         model.OrderStatusCompleted,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid status",
			body:           `{"status":"shipped"}`,
			status:         "shipped",
			mockError:      model.ErrInvalidStatus,
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidStatus,
		},
		{
			name:           "Strict transition refused",
			body:           `{"status":"pending"}`,
			status:         model.OrderStatusPending,
			mockError:      model.ErrInvalidTransition,
			expectService:  true,
			expectedStatus: http.StatusConflict,
			expectedCode:   model.ErrCodeInvalidTransition,
		},
		{
			name:           "Unknown order",
			body:           `{"status":"cancelled"}`,
			status:         model.OrderStatusCancelled,
			mockError:      model.ErrOrderNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeOrderNotFound,
		},
		{
			name:           "Invalid JSON",
			body:           `{"status":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, mockService, logger)
			if tt.expectService {
				mockService.On("UpdateOrderStatus", "O1", tt.status).Return(testOrder(tt.status), tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/O1/status", bytes.NewReader([]byte(tt.body)))
			req.SetPathValue("id", "O1")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}
