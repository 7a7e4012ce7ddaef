package testutil

import (
	"database/sql"
	"testing"

	"github.com/crewplanhq/crewplan/internal/db"
)

// NewTestDB opens a fresh in-memory SQLite database with the full schema
// migrated, closed automatically when the test finishes. Each call is an
// isolated database, so tests never see each other's rows.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps the test database in a UnitOfWork for transactional paths.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
