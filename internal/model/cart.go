package model

import (
	"github.com/shopspring/decimal"
)

// CartLine is one product entry of the shopping cart. Price is the unit price
// captured when the product first entered the cart.
type CartLine struct {
	ProductID string          `json:"productId" yaml:"productId"`
	Quantity  int             `json:"quantity" yaml:"quantity"`
	Price     decimal.Decimal `json:"price" yaml:"price"`
}

// LineTotal returns price × quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartItem is a cart line resolved against the catalogue. Product is nil when
// the referenced product no longer exists.
type CartItem struct {
	CartLine
	Product *Product `json:"product"`
}

// Breakdown holds the derived pricing of a set of cart lines.
type Breakdown struct {
	Subtotal              decimal.Decimal `json:"subtotal"`
	Tax                   decimal.Decimal `json:"tax"`
	Shipping              decimal.Decimal `json:"shipping"`
	Total                 decimal.Decimal `json:"total"`
	FreeShippingRemaining decimal.Decimal `json:"freeShippingRemaining"`
}

// CartSummary is the read model of the cart.
type CartSummary struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Breakdown
}

// AddCartItemRequest is the payload for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest is the payload for setting a line quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
