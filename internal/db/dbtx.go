package db

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql shared by *sql.DB and *sql.Tx.
// Repositories are built over it, so the same repository type works directly
// against the pool or scoped to a transaction inside a UnitOfWork.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
