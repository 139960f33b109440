// Package pricing derives cart totals from cart lines and a pricing policy.
// All arithmetic is exact decimal arithmetic; nothing is rounded here.
package pricing

import (
	"storefront/internal/model"

	"github.com/shopspring/decimal"
)

// Policy holds the pricing constants applied at checkout.
type Policy struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
}

// DefaultPolicy returns 8% tax and a 10.00 flat fee waived above 100.00.
func DefaultPolicy() Policy {
	return Policy{
		TaxRate:               decimal.RequireFromString("0.08"),
		FreeShippingThreshold: decimal.RequireFromString("100.00"),
		FlatShippingFee:       decimal.RequireFromString("10.00"),
	}
}

// Subtotal returns the sum of price × quantity over lines.
func Subtotal(lines []model.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// ItemCount returns the number of units across lines.
func ItemCount(lines []model.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// Tax returns the tax owed on subtotal.
func (p Policy) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(p.TaxRate)
}

// Shipping returns the shipping fee for subtotal. Shipping is only free when
// the subtotal is strictly greater than the threshold.
func (p Policy) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		return decimal.Zero
	}
	return p.FlatShippingFee
}

// Total returns subtotal + tax + shipping for lines.
func (p Policy) Total(lines []model.CartLine) decimal.Decimal {
	return p.Quote(lines).Total
}

// Quote computes the full breakdown for lines.
func (p Policy) Quote(lines []model.CartLine) model.Breakdown {
	subtotal := Subtotal(lines)
	tax := p.Tax(subtotal)
	shipping := p.Shipping(subtotal)

	remaining := decimal.Zero
	if shipping.IsPositive() {
		remaining = p.FreeShippingThreshold.Sub(subtotal)
	}

	return model.Breakdown{
		Subtotal:              subtotal,
		Tax:                   tax,
		Shipping:              shipping,
		Total:                 subtotal.Add(tax).Add(shipping),
		FreeShippingRemaining: remaining,
	}
}
