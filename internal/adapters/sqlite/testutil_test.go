// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tests run against db.GetSchemaSQL() so they never drift from the schema
// used by the application.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/carline/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCar inserts a test car with the given id and line.
func seedCar(t *testing.T, db *sql.DB, id int, lineID string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO cars (id, brand, model, doors, line_id, status) VALUES (?, 'Seed', 'Car', 4, ?, 'IN_PROGRESS')",
		id, lineID,
	)
	if err != nil {
		t.Fatalf("failed to seed car: %v", err)
	}
}
