package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/people/internal/models"
)

const selectEntries = `
	SELECT people.name, records.zodiac_sign, records.birth
	FROM records
	INNER JOIN people ON people.id = records.person_id
`

// AddRecord resolves the person by exact name, inserting it if absent, then
// appends a record referencing it. Both writes share one transaction.
func (s *SQLiteStore) AddRecord(ctx context.Context, rec models.NewRecord) (*models.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var personID int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM people WHERE name = ?",
		rec.Name,
	).Scan(&personID)
	switch {
	case err == sql.ErrNoRows:
		res, err := tx.ExecContext(ctx,
			"INSERT INTO people (name) VALUES (?)",
			rec.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert person: %w", err)
		}
		if personID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("failed to get person ID: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to look up person: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO records (zodiac_sign, person_id, birth) VALUES (?, ?, ?)",
		nullString(rec.ZodiacSign), personID, rec.Birth,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}
	recordID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get record ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.Record{
		ID:         recordID,
		ZodiacSign: rec.ZodiacSign,
		PersonID:   personID,
		Birth:      rec.Birth,
	}, nil
}

// GetPersonByName retrieves a person by exact name.
func (s *SQLiteStore) GetPersonByName(ctx context.Context, name string) (*models.Person, error) {
	person := &models.Person{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM people WHERE name = ?",
		name,
	).Scan(&person.ID, &person.Name)

	if err == sql.ErrNoRows {
		return nil, nil // Person not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person by name: %w", err)
	}

	return person, nil
}

// ListEntries returns all records joined with their person's name, in the
// order SQLite yields them.
func (s *SQLiteStore) ListEntries(ctx context.Context) ([]models.Entry, error) {
	return s.queryEntries(ctx, selectEntries)
}

// ListEntriesBySign returns the records whose zodiac sign matches exactly.
// Records stored without a sign never match.
func (s *SQLiteStore) ListEntriesBySign(ctx context.Context, sign string) ([]models.Entry, error) {
	return s.queryEntries(ctx, selectEntries+"WHERE records.zodiac_sign = ?", sign)
}

func (s *SQLiteStore) queryEntries(ctx context.Context, query string, args ...any) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		var (
			entry models.Entry
			sign  sql.NullString
		)
		if err := rows.Scan(&entry.Name, &sign, &entry.Birth); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entry.ZodiacSign = sign.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// nullString maps "" to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
