package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// sqliteSlot implements Slot on a local SQLite file.
type sqliteSlot struct {
	db     *sql.DB
	path   string
	logger zerolog.Logger
}

// NewSQLiteSlot opens (creating if needed) the SQLite database at path.
func NewSQLiteSlot(ctx context.Context, path string, logger zerolog.Logger) (Slot, error) {
	logger = logger.With().Str("slot", "sqlite").Str("path", path).Logger()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create slot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite slot: %w", err)
	}
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE IF NOT EXISTS kv_slots (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TEXT NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sqlite slot schema: %w", err)
	}

	logger.Info().Msg("sqlite slot opened")

	return &sqliteSlot{db: db, path: path, logger: logger}, nil
}

// Load returns the stored value for key.
func (s *sqliteSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to load slot")
		return nil, fmt.Errorf("failed to load slot %s: %w", key, err)
	}
	return value, nil
}

// Save overwrites the value stored under key.
func (s *sqliteSlot) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to save slot")
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}
	return nil
}

// Close closes the database handle.
func (s *sqliteSlot) Close() error {
	return s.db.Close()
}
