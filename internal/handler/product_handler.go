package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	reader service.CatalogReader
	writer service.CatalogWriter
	logger zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(reader service.CatalogReader, writer service.CatalogWriter, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		reader: reader,
		writer: writer,
		logger: logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := model.ProductFilter{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Sort:     query.Get("sort"),
	}

	var err error
	if filter.MinPrice, err = decimalParam(query.Get("minPrice")); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidQuery, "invalid minPrice parameter", h.logger)
		return
	}
	if filter.MaxPrice, err = decimalParam(query.Get("maxPrice")); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidQuery, "invalid maxPrice parameter", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.reader.ListProducts(filter))
}

// decimalParam parses an optional decimal query value. Empty yields nil.
func decimalParam(value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.reader.GetProduct(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reader.Categories())
}

// Create handles POST /api/admin/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.writer.AddProduct(input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Replace handles PUT /api/admin/products/{id} requests. The body is the full
// record; omitted fields are cleared.
func (h *ProductHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.writer.UpdateProduct(model.Product{
		ID:          r.PathValue("id"),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Inventory:   input.Inventory,
		Image:       input.Image,
		Category:    input.Category,
	})
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Patch handles PATCH /api/admin/products/{id} requests. Only the fields
// present in the body change.
func (h *ProductHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch model.ProductPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	current, err := h.reader.GetProduct(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	product, err := h.writer.UpdateProduct(patch.Apply(current))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/admin/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.writer.DeleteProduct(r.PathValue("id")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
