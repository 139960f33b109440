package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/router"
	"storefront/internal/service"
	"storefront/internal/slot"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(ctx, config.DatabaseConfig{
		URL:             connStr,
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupSlots removes every stored slot.
func CleanupSlots(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM cart_slots"); err != nil {
		t.Logf("failed to clean cart_slots: %v", err)
	}
}

// SeedProducts returns the catalogue every integration test starts from.
func SeedProducts() []model.Product {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []struct {
		id        string
		name      string
		price     string
		inventory int
		category  string
	}{
		{"P001", "Test Product 1", "10.00", 100, "Category A"},
		{"P002", "Test Product 2", "20.00", 3, "Category B"},
		{"P003", "Test Product 3", "30.00", 50, "Category A"},
		{"P004", "Test Product 4", "40.00", 0, "Category C"},
		{"P005", "Test Product 5", "50.00", 10, "Category B"},
	}

	out := make([]model.Product, 0, len(products))
	for i, p := range products {
		out = append(out, model.Product{
			ID:        p.id,
			Name:      p.name,
			Price:     decimal.RequireFromString(p.price),
			Inventory: p.inventory,
			Category:  p.category,
			CreatedAt: created.Add(time.Duration(i) * time.Hour),
		})
	}
	return out
}

// TestStore is a fully wired engine and HTTP stack over a cart slot.
type TestStore struct {
	Engine  *service.Engine
	Handler http.Handler
}

// NewTestStore wires an engine over s using the default pricing policy. The
// engine is closed on cleanup, flushing the last cart snapshot to s.
func NewTestStore(t *testing.T, s slot.Slot) *TestStore {
	t.Helper()

	logger := zerolog.Nop()
	persister := slot.NewPersister(s, "cart", 2*time.Second, logger)

	engine := service.NewEngine(context.Background(), persister, service.Options{
		Policy:           pricing.DefaultPolicy(),
		EnforceInventory: true,
		Products:         SeedProducts(),
	}, logger)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = engine.Close(ctx)
	})

	return &TestStore{
		Engine: engine,
		Handler: router.New(
			handler.NewProductHandler(engine, engine, logger),
			handler.NewCartHandler(engine, engine, logger),
			handler.NewOrderHandler(engine, engine, logger),
			logger,
		),
	}
}
