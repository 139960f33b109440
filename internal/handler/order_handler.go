package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	reader service.OrderReader
	writer service.OrderWriter
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(reader service.OrderReader, writer service.OrderWriter, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		reader: reader,
		writer: writer,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests. Customer fields are taken as given.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.PlaceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	order, err := h.writer.PlaceOrder(req.CustomerName, req.CustomerEmail)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := model.OrderFilter{
		Search: query.Get("search"),
		Status: model.OrderStatus(query.Get("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidStatus, model.ErrInvalidStatus.Message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.reader.ListOrders(filter))
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.reader.GetOrder(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/admin/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	order, err := h.writer.UpdateOrderStatus(r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
