package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repository writes that must join a caller-owned transaction take a
// Querier instead of using the pool directly.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the persistence gateway. It owns the connection pool and the
// transaction boundary for multi-table writes.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// WithinTx runs fn inside a single transaction. Any error from fn rolls the
// whole transaction back, so callers never observe partial writes.
func (s *Store) WithinTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return &entity.StorageError{Op: "begin transaction", Err: err}
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return &entity.StorageError{Op: "commit transaction", Err: err}
	}
	return nil
}
