// Package seed loads the initial catalogue and order history from JSON or
// YAML files, optionally gzipped, stored locally or in S3.
package seed

import (
	"context"
	"fmt"

	"storefront/internal/model"
)

// Catalog is the content of one seed file.
type Catalog struct {
	Products []model.Product `json:"products"`
	Orders   []model.Order   `json:"orders"`
}

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads and decodes the seed file at path.
	Load(ctx context.Context, path string) (*Catalog, error)
}

// Validate checks every record of the catalogue. Orders without a status
// are marked pending.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Products))
	for i, p := range c.Products {
		if p.ID == "" {
			return fmt.Errorf("product %d: missing id", i)
		}
		if err := p.Input().Validate(); err != nil {
			return fmt.Errorf("product %s: %w", p.ID, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("product %s: duplicate id", p.ID)
		}
		seen[p.ID] = true
	}

	for i := range c.Orders {
		o := &c.Orders[i]
		if o.ID == "" {
			return fmt.Errorf("order %d: missing id", i)
		}
		if o.Status == "" {
			o.Status = model.OrderStatusPending
		}
		if !o.Status.Valid() {
			return fmt.Errorf("order %s: %w", o.ID, model.ErrInvalidStatus)
		}
	}
	return nil
}

// Merge folds catalogues together in order. A later product replaces an
// earlier one with the same id; orders are concatenated.
func Merge(catalogs ...*Catalog) *Catalog {
	out := &Catalog{}
	index := make(map[string]int)

	for _, c := range catalogs {
		if c == nil {
			continue
		}
		for _, p := range c.Products {
			if i, ok := index[p.ID]; ok {
				out.Products[i] = p
				continue
			}
			index[p.ID] = len(out.Products)
			out.Products = append(out.Products, p)
		}
		out.Orders = append(out.Orders, c.Orders...)
	}
	return out
}
