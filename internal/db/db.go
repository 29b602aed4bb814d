// Package db opens the SQLite database backing the car store.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open returns a private in-memory database with the schema applied.
// The data lives as long as the returned handle.
func Open() (*sql.DB, error) {
	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every new connection to ":memory:" would be a fresh, empty database.
	database.SetMaxOpenConns(1)
	database.SetConnMaxLifetime(0)

	if _, err := database.Exec(GetSchemaSQL()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}
