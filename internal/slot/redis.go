package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// redisSlot implements Slot with plain Redis string keys.
type redisSlot struct {
	client    *redis.Client
	keyPrefix string
	ownClient bool
	logger    zerolog.Logger
}

// NewRedisSlot connects to the Redis server at redisURL.
func NewRedisSlot(ctx context.Context, redisURL, keyPrefix string, logger zerolog.Logger) (Slot, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s := newRedisSlot(client, keyPrefix, logger)
	s.ownClient = true

	s.logger.Info().Str("addr", opt.Addr).Msg("redis slot connected")

	return s, nil
}

// NewRedisSlotFromClient wraps an existing client. Close leaves the client open.
func NewRedisSlotFromClient(client *redis.Client, keyPrefix string, logger zerolog.Logger) Slot {
	return newRedisSlot(client, keyPrefix, logger)
}

func newRedisSlot(client *redis.Client, keyPrefix string, logger zerolog.Logger) *redisSlot {
	return &redisSlot{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger.With().Str("slot", "redis").Logger(),
	}
}

// Load returns the stored value for key.
func (s *redisSlot) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to load slot")
		return nil, fmt.Errorf("failed to load slot %s: %w", key, err)
	}
	return value, nil
}

// Save overwrites the value stored under key.
func (s *redisSlot) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to save slot")
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}
	return nil
}

// Close closes the client if the slot created it.
func (s *redisSlot) Close() error {
	if !s.ownClient {
		return nil
	}
	return s.client.Close()
}
