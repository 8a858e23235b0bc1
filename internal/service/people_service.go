// Package service orchestrates people operations on top of a storage.Store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/people/internal/models"
	"github.com/mmynk/people/internal/storage"
)

// ErrInvalidInput is returned when a request is rejected before reaching storage.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

// ValidateRecord checks that rec carries a name and a birth value.
// Neither value is parsed.
func ValidateRecord(rec models.NewRecord) error {
	if err := validate.Struct(rec); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// ValidateSign checks that a filter sign was given.
func ValidateSign(sign string) error {
	if sign == "" {
		return fmt.Errorf("%w: zodiac sign is required", ErrInvalidInput)
	}
	return nil
}

// PeopleService implements the add, display and select operations.
type PeopleService struct {
	store storage.Store
}

// NewPeopleService creates a new PeopleService with the given storage backend.
func NewPeopleService(store storage.Store) *PeopleService {
	return &PeopleService{store: store}
}

// Init ensures the schema exists.
func (s *PeopleService) Init(ctx context.Context) error {
	if err := s.store.CreateSchema(ctx); err != nil {
		slog.Error("Init failed", "error", err)
		return err
	}
	slog.Debug("Schema ready")
	return nil
}

// Add stores rec, creating the person if needed. Callers check rec with
// ValidateRecord before opening storage.
func (s *PeopleService) Add(ctx context.Context, rec models.NewRecord) (*models.Record, error) {
	slog.Info("Add request received",
		"name", rec.Name,
		"zodiac_sign", rec.ZodiacSign,
		"birth", rec.Birth,
	)

	record, err := s.store.AddRecord(ctx, rec)
	if err != nil {
		slog.Error("Add failed", "name", rec.Name, "error", err)
		return nil, err
	}

	slog.Info("Record added", "record_id", record.ID, "person_id", record.PersonID)
	return record, nil
}

// All returns every entry.
func (s *PeopleService) All(ctx context.Context) ([]models.Entry, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		slog.Error("All failed", "error", err)
		return nil, err
	}

	slog.Info("All successful", "count", len(entries))
	return entries, nil
}

// BySign returns the entries with the given zodiac sign. Callers check sign
// with ValidateSign before opening storage.
func (s *PeopleService) BySign(ctx context.Context, sign string) ([]models.Entry, error) {
	slog.Info("BySign request received", "zodiac_sign", sign)

	entries, err := s.store.ListEntriesBySign(ctx, sign)
	if err != nil {
		slog.Error("BySign failed", "zodiac_sign", sign, "error", err)
		return nil, err
	}

	slog.Info("BySign successful", "zodiac_sign", sign, "count", len(entries))
	return entries, nil
}
