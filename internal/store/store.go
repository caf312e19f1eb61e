package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Sentinel errors mapped to HTTP status codes by the API layer.
var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique constraint rejects a write.
	ErrConflict = errors.New("conflict")
)

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks database connectivity (used by the readiness probe)
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// customer_id and the order_items pair are deliberately not declared as
// foreign keys: deleting a customer or item leaves referencing orders
// intact, and orders may be created against ids that never existed.
const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	phone TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS items (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id          BIGSERIAL PRIMARY KEY,
	customer_id BIGINT NOT NULL,
	"timestamp" BIGINT NOT NULL,
	notes       TEXT
);

CREATE TABLE IF NOT EXISTS order_items (
	order_id BIGINT NOT NULL,
	item_id  BIGINT NOT NULL,
	position INT    NOT NULL
);

CREATE INDEX IF NOT EXISTS order_items_order_id_idx ON order_items (order_id);
`

// InitSchema creates the tables if they do not exist. Safe to run on every
// startup; must run before the service accepts requests.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
