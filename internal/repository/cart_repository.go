package repository

import (
	"storefront/internal/model"
)

// cartRepository implements CartRepository. Carts are small, so lookups scan.
type cartRepository struct {
	lines []model.CartLine
}

// NewCartRepository creates an empty in-memory cart.
func NewCartRepository() CartRepository {
	return &cartRepository{}
}

// Lines returns a copy of the lines in insertion order.
func (r *cartRepository) Lines() []model.CartLine {
	out := make([]model.CartLine, len(r.lines))
	copy(out, r.lines)
	return out
}

// Find returns the line for productID.
func (r *cartRepository) Find(productID string) (model.CartLine, bool) {
	if i := r.indexOf(productID); i >= 0 {
		return r.lines[i], true
	}
	return model.CartLine{}, false
}

// Put replaces the line for line.ProductID, or appends it if absent.
func (r *cartRepository) Put(line model.CartLine) {
	if i := r.indexOf(line.ProductID); i >= 0 {
		r.lines[i] = line
		return
	}
	r.lines = append(r.lines, line)
}

// Remove deletes the line for productID.
func (r *cartRepository) Remove(productID string) bool {
	i := r.indexOf(productID)
	if i < 0 {
		return false
	}
	r.lines = append(r.lines[:i], r.lines[i+1:]...)
	return true
}

// Replace swaps the whole collection.
func (r *cartRepository) Replace(lines []model.CartLine) {
	r.lines = append([]model.CartLine(nil), lines...)
}

// Clear empties the collection.
func (r *cartRepository) Clear() {
	r.lines = nil
}

// Len returns the number of lines.
func (r *cartRepository) Len() int {
	return len(r.lines)
}

func (r *cartRepository) indexOf(productID string) int {
	for i, l := range r.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
