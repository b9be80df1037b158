package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSlot stores the value as a single row of the slots table. The
// table is created on construction; the pool is owned by the slot and
// closed with it.
type PostgresSlot struct {
	pool *pgxpool.Pool
}

func NewPostgresSlot(ctx context.Context, pool *pgxpool.Pool) (*PostgresSlot, error) {
	const createSlotsTableQuery = `
CREATE TABLE IF NOT EXISTS slots (
    key        TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
)
`

	_, err := pool.Exec(ctx, createSlotsTableQuery)
	if err != nil && !isDuplicateError(err) {
		return nil, fmt.Errorf("storage: create slots table: %w", err)
	}
	return &PostgresSlot{pool: pool}, nil
}

// isDuplicateError reports whether err is one of the duplicate-object
// failures produced when two instances race the same bootstrap.
func isDuplicateError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.UniqueViolation ||
		pgErr.Code == pgerrcode.DuplicateTable
}

func (s *PostgresSlot) Get(ctx context.Context) ([]byte, error) {
	const selectSlotQuery = `
SELECT value
FROM slots
WHERE key = $1
`

	var value []byte
	err := s.pool.QueryRow(ctx, selectSlotQuery, Key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: select slot: %w", err)
	}
	return value, nil
}

func (s *PostgresSlot) Set(ctx context.Context, value []byte) error {
	const upsertSlotQuery = `
INSERT INTO slots (key, value, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE
SET value      = EXCLUDED.value,
    updated_at = EXCLUDED.updated_at
`

	_, err := s.pool.Exec(ctx, upsertSlotQuery, Key, value, time.Now())
	if err != nil {
		return fmt.Errorf("storage: upsert slot: %w", err)
	}
	return nil
}

func (s *PostgresSlot) Close() error {
	s.pool.Close()
	return nil
}
