package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresSlot implements Slot on a cart_slots table.
type postgresSlot struct {
	pool     *pgxpool.Pool
	ownsPool bool
	logger   zerolog.Logger
}

// NewPostgresSlot creates the cart_slots table if needed and returns a slot
// backed by pool. Close leaves the pool open.
func NewPostgresSlot(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) (Slot, error) {
	return newPostgresSlot(ctx, pool, false, logger)
}

func newPostgresSlot(ctx context.Context, pool *pgxpool.Pool, ownsPool bool, logger zerolog.Logger) (*postgresSlot, error) {
	logger = logger.With().Str("slot", "postgres").Logger()

	schema := `
		CREATE TABLE IF NOT EXISTS cart_slots (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Error().Err(err).Msg("failed to create cart_slots table")
		return nil, fmt.Errorf("failed to create cart_slots table: %w", err)
	}

	return &postgresSlot{pool: pool, ownsPool: ownsPool, logger: logger}, nil
}

// Load returns the stored value for key.
func (s *postgresSlot) Load(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM cart_slots
		WHERE key = $1
	`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().Str("key", key).Msg("slot not found")
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to query slot")
		return nil, fmt.Errorf("failed to query slot %s: %w", key, err)
	}

	return value, nil
}

// Save overwrites the value stored under key.
func (s *postgresSlot) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO cart_slots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to save slot")
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Int("bytes", len(value)).Msg("slot saved")

	return nil
}

// Close closes the pool if the slot created it.
func (s *postgresSlot) Close() error {
	if s.ownsPool {
		s.pool.Close()
	}
	return nil
}
