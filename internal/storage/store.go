// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/people/internal/models"
)

// Store defines the interface for people and record storage operations.
// This abstraction keeps the service layer independent of SQLite.
type Store interface {
	// CreateSchema ensures the people and records tables exist.
	// Safe to call on every startup.
	CreateSchema(ctx context.Context) error

	// AddRecord resolves the person named in rec (creating it if needed)
	// and appends a record for them. Both steps commit together or not at all.
	AddRecord(ctx context.Context, rec models.NewRecord) (*models.Record, error)

	// GetPersonByName retrieves a person by exact name.
	// Returns nil, nil if no such person exists.
	GetPersonByName(ctx context.Context, name string) (*models.Person, error)

	// ListEntries returns every record joined with its person's name.
	ListEntries(ctx context.Context) ([]models.Entry, error)

	// ListEntriesBySign returns the records whose zodiac sign equals sign exactly.
	// No match yields an empty slice, not an error.
	ListEntriesBySign(ctx context.Context, sign string) ([]models.Entry, error)

	// Close releases any resources held by the store.
	Close() error
}
