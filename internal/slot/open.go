package slot

import (
	"context"
	"fmt"

	"storefront/internal/config"
	"storefront/internal/database"

	"github.com/rs/zerolog"
)

// Open creates the slot backend selected by cfg.Slot.Backend. The returned
// slot owns any connection it opened.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Slot, error) {
	switch cfg.Slot.Backend {
	case config.SlotBackendMemory:
		logger.Warn().Msg("using in-memory cart slot, cart will not survive restarts")
		return NewMemorySlot(), nil

	case config.SlotBackendSQLite:
		return NewSQLiteSlot(ctx, cfg.Slot.SQLitePath, logger)

	case config.SlotBackendRedis:
		return NewRedisSlot(ctx, cfg.Redis.URL, cfg.Redis.KeyPrefix, logger)

	case config.SlotBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		s, err := newPostgresSlot(ctx, pool, true, logger)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown slot backend: %s", cfg.Slot.Backend)
	}
}
