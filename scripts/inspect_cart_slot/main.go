package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"storefront/internal/config"
	"storefront/internal/pricing"
	"storefront/internal/slot"
)

// inspectCartSlot prints the cart stored in the configured slot backend, using
// the same environment variables as the API server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := slot.Open(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open %s slot: %v\n", cfg.Slot.Backend, err)
		os.Exit(1)
	}
	defer s.Close()

	data, err := s.Load(ctx, cfg.Slot.Key)
	if errors.Is(err, slot.ErrNotFound) {
		fmt.Printf("Slot %q is empty\n", cfg.Slot.Key)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load failed: %v\n", err)
		os.Exit(1)
	}

	lines, err := slot.DecodeCart(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Stored cart is unreadable: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Slot %q (%s backend), %d lines:\n", cfg.Slot.Key, cfg.Slot.Backend, len(lines))
	for _, l := range lines {
		fmt.Printf("  %-20s x%-4d @ %s\n", l.ProductID, l.Quantity, l.Price.StringFixed(2))
	}

	quote := pricing.Policy{
		TaxRate:               cfg.Pricing.TaxRate,
		FreeShippingThreshold: cfg.Pricing.FreeShippingThreshold,
		FlatShippingFee:       cfg.Pricing.FlatShippingFee,
	}.Quote(lines)
	fmt.Printf("Subtotal at captured prices: %s (total %s)\n", quote.Subtotal.StringFixed(2), quote.Total.StringFixed(2))
}
