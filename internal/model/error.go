package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON           = "INVALID_JSON"
	ErrCodeMissingField          = "MISSING_FIELD"
	ErrCodeInvalidQuery          = "INVALID_QUERY"
	ErrCodeProductNotFound       = "PRODUCT_NOT_FOUND"
	ErrCodeCartLineNotFound      = "CART_LINE_NOT_FOUND"
	ErrCodeOrderNotFound         = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity       = "INVALID_QUANTITY"
	ErrCodeInsufficientInventory = "INSUFFICIENT_INVENTORY"
	ErrCodeEmptyCart             = "EMPTY_CART"
	ErrCodeInvalidStatus         = "INVALID_STATUS"
	ErrCodeInvalidTransition     = "INVALID_TRANSITION"
	ErrCodeInvalidProduct        = "INVALID_PRODUCT"
	ErrCodeMethodNotAllowed      = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound              = "NOT_FOUND"
	ErrCodeInternalError         = "INTERNAL_ERROR"
)

// DomainError is returned by engine operations that refused to change state.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound       = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCartLineNotFound      = NewDomainError(ErrCodeCartLineNotFound, "Product is not in the cart")
	ErrOrderNotFound         = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity       = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInsufficientInventory = NewDomainError(ErrCodeInsufficientInventory, "Requested quantity exceeds available inventory")
	ErrEmptyCart             = NewDomainError(ErrCodeEmptyCart, "Cannot place an order with an empty cart")
	ErrInvalidStatus         = NewDomainError(ErrCodeInvalidStatus, "Order status must be pending, completed or cancelled")
	ErrInvalidTransition     = NewDomainError(ErrCodeInvalidTransition, "Order status transition is not allowed")
	ErrInvalidProduct        = NewDomainError(ErrCodeInvalidProduct, "Product requires a name, a non-negative price and non-negative inventory")
)
