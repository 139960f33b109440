// Package slot persists the cart to a single durable key-value entry.
package slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/model"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("slot: key not found")

// Slot is a durable key-value store holding serialized carts.
type Slot interface {
	// Load returns the stored value for key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the value stored under key.
	Save(ctx context.Context, key string, value []byte) error

	// Close releases resources held by the slot.
	Close() error
}

// EncodeCart serializes cart lines as a JSON array of {productId, quantity, price}.
func EncodeCart(lines []model.CartLine) ([]byte, error) {
	if lines == nil {
		lines = []model.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}
	return data, nil
}

// DecodeCart parses a stored cart. Prices may be JSON numbers or decimal
// strings. The result is passed through SanitizeCart.
func DecodeCart(data []byte) ([]model.CartLine, error) {
	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return SanitizeCart(lines), nil
}

// SanitizeCart drops lines without a product id or with a non-positive
// quantity, and merges duplicate product ids keeping the first price.
func SanitizeCart(lines []model.CartLine) []model.CartLine {
	out := make([]model.CartLine, 0, len(lines))
	seen := make(map[string]int, len(lines))

	for _, l := range lines {
		if l.ProductID == "" || l.Quantity <= 0 {
			continue
		}
		if i, ok := seen[l.ProductID]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		seen[l.ProductID] = len(out)
		out = append(out, l)
	}
	return out
}
