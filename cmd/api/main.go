package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/pricing"
	"storefront/internal/router"
	"storefront/internal/seed"
	"storefront/internal/service"
	"storefront/internal/slot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize seed loader with S3 and local fallback
	fileLoader := seed.NewFileLoader(logger)
	var s3Loader seed.Loader

	if cfg.S3.Enabled {
		s3Loader, err = seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		}
	} else {
		logger.Info().Msg("using local file system for seed files (S3 disabled)")
	}

	seedLoader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled && s3Loader != nil, logger)

	catalog, err := seed.LoadAll(ctx, seedLoader, cfg.Seed.Files)
	if err != nil {
		return fmt.Errorf("failed to load seed catalogue: %w", err)
	}

	// Open the cart slot
	cartSlot, err := slot.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open cart slot: %w", err)
	}
	defer func() {
		if err := cartSlot.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close cart slot")
		}
	}()

	persister := slot.NewPersister(cartSlot, cfg.Slot.Key, cfg.Slot.WriteTimeout, logger)

	// Initialize the store engine
	engine := service.NewEngine(ctx, persister, service.Options{
		Policy: pricing.Policy{
			TaxRate:               cfg.Pricing.TaxRate,
			FreeShippingThreshold: cfg.Pricing.FreeShippingThreshold,
			FlatShippingFee:       cfg.Pricing.FlatShippingFee,
		},
		EnforceInventory:  cfg.Store.EnforceInventory,
		StrictTransitions: cfg.Store.StrictOrderTransitions,
		Products:          catalog.Products,
		Orders:            catalog.Orders,
	}, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(engine, engine, logger)
	cartHandler := handler.NewCartHandler(engine, engine, logger)
	orderHandler := handler.NewOrderHandler(engine, engine, logger)

	// Initialize router
	mux := router.New(productHandler, cartHandler, orderHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		closeEngine(engine, cfg.Server.ShutdownTimeout)
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			closeEngine(engine, cfg.Server.ShutdownTimeout)
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		// The server no longer accepts requests, so the last cart snapshot is final.
		if err := closeEngine(engine, cfg.Server.ShutdownTimeout); err != nil {
			logger.Error().Err(err).Msg("failed to flush cart")
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

func closeEngine(engine *service.Engine, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return engine.Close(ctx)
}
