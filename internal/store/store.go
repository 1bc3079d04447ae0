// Package store holds the session's record collections in an in-memory
// SQLite database. The store is constructed once at startup, seeded, and
// passed by reference to consumers; nothing is ever written to disk.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Store wraps the database connection
type Store struct {
	*sql.DB
}

// Open creates the in-memory database, initializes the schema and loads
// the seed dataset.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// The in-memory database vanishes with its last connection. Keep a
	// single connection so every query sees the same data.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	s := &Store{db}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed data: %w", err)
	}

	return s, nil
}
