// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/people/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (and creates, if absent) the database file at dbPath without
// touching the schema. Most callers want New.
func Open(dbPath string) (*SQLiteStore, error) {
	// SQLite treats "" as a private temporary database that vanishes on close.
	if dbPath == "" {
		return nil, errors.New("database path is required")
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection per store: the foreign_keys pragma is per connection,
	// and nothing here runs concurrently.
	db.SetMaxOpenConns(1)

	// Enable foreign keys. This is also the first statement, so it creates the file.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// New opens the database at dbPath and creates the schema.
func New(dbPath string) (*SQLiteStore, error) {
	store, err := Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.CreateSchema(context.Background()); err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSchema creates the people and records tables if they don't exist.
func (s *SQLiteStore) CreateSchema(ctx context.Context) error {
	if err := runMigrations(ctx, s.db); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
