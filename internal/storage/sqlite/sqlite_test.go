package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mmynk/people/internal/models"
)

// newTestStore creates a store with schema in a fresh temp directory.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func countRows(t *testing.T, s *SQLiteStore, table string) int {
	t.Helper()

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func TestCreateSchema(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "people-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("Expected %s not to exist before opening", dbPath)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := store.CreateSchema(ctx); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	info, err := os.Stat(dbPath)
	if err != nil {
		t.Fatalf("Expected database file to exist: %v", err)
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Expected %s to be a regular file", dbPath)
	}

	var tables int
	err = store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('people', 'records')",
	).Scan(&tables)
	if err != nil {
		t.Fatalf("Failed to inspect schema: %v", err)
	}
	if tables != 2 {
		t.Errorf("Expected 2 tables, got %d", tables)
	}
	if n := countRows(t, store, "people"); n != 0 {
		t.Errorf("Expected empty people table, got %d rows", n)
	}
	if n := countRows(t, store, "records"); n != 0 {
		t.Errorf("Expected empty records table, got %d rows", n)
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("AddRecord round-trips through ListEntries", func(t *testing.T) {
		store := newTestStore(t)

		rec, err := store.AddRecord(ctx, models.NewRecord{
			Name:       "Иванов Иван",
			ZodiacSign: "овен",
			Birth:      "2001.03.21",
		})
		if err != nil {
			t.Fatalf("AddRecord failed: %v", err)
		}
		if rec.ID == 0 || rec.PersonID == 0 {
			t.Errorf("Expected IDs to be assigned, got record=%d person=%d", rec.ID, rec.PersonID)
		}

		entries, err := store.ListEntries(ctx)
		if err != nil {
			t.Fatalf("ListEntries failed: %v", err)
		}
		want := []models.Entry{{Name: "Иванов Иван", ZodiacSign: "овен", Birth: "2001.03.21"}}
		if !reflect.DeepEqual(entries, want) {
			t.Errorf("ListEntries = %+v, want %+v", entries, want)
		}
	})

	t.Run("AddRecord reuses an existing person", func(t *testing.T) {
		store := newTestStore(t)

		first, err := store.AddRecord(ctx, models.NewRecord{Name: "Иванов Иван", ZodiacSign: "овен", Birth: "2001.03.21"})
		if err != nil {
			t.Fatalf("AddRecord failed: %v", err)
		}
		second, err := store.AddRecord(ctx, models.NewRecord{Name: "Иванов Иван", ZodiacSign: "овен", Birth: "2002.03.22"})
		if err != nil {
			t.Fatalf("AddRecord failed: %v", err)
		}

		if n := countRows(t, store, "people"); n != 1 {
			t.Errorf("Expected 1 person, got %d", n)
		}
		if n := countRows(t, store, "records"); n != 2 {
			t.Errorf("Expected 2 records, got %d", n)
		}
		if first.PersonID != second.PersonID {
			t.Errorf("Person ID mismatch: %d vs %d", first.PersonID, second.PersonID)
		}

		var distinct int
		if err := store.db.QueryRow("SELECT COUNT(DISTINCT person_id) FROM records").Scan(&distinct); err != nil {
			t.Fatalf("Failed to count person references: %v", err)
		}
		if distinct != 1 {
			t.Errorf("Expected records to reference 1 person, got %d", distinct)
		}

		person, err := store.GetPersonByName(ctx, "Иванов Иван")
		if err != nil {
			t.Fatalf("GetPersonByName failed: %v", err)
		}
		if person == nil || person.ID != first.PersonID {
			t.Errorf("GetPersonByName = %+v, want ID %d", person, first.PersonID)
		}
	})

	t.Run("ListEntriesBySign filters by exact sign", func(t *testing.T) {
		store := newTestStore(t)

		for _, rec := range []models.NewRecord{
			{Name: "Иванов Иван", ZodiacSign: "овен", Birth: "2001.03.21"},
			{Name: "Петров Владимир", ZodiacSign: "лев", Birth: "2005.08.16"},
		} {
			if _, err := store.AddRecord(ctx, rec); err != nil {
				t.Fatalf("AddRecord failed: %v", err)
			}
		}

		all, err := store.ListEntries(ctx)
		if err != nil {
			t.Fatalf("ListEntries failed: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("Expected 2 entries, got %d", len(all))
		}

		got, err := store.ListEntriesBySign(ctx, "овен")
		if err != nil {
			t.Fatalf("ListEntriesBySign failed: %v", err)
		}
		want := []models.Entry{{Name: "Иванов Иван", ZodiacSign: "овен", Birth: "2001.03.21"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ListEntriesBySign = %+v, want %+v", got, want)
		}

		// Case-sensitive: no normalization of the filter value.
		upper, err := store.ListEntriesBySign(ctx, "Овен")
		if err != nil {
			t.Fatalf("ListEntriesBySign failed: %v", err)
		}
		if len(upper) != 0 {
			t.Errorf("Expected no entries for differently-cased sign, got %+v", upper)
		}
	})

	t.Run("ListEntriesBySign returns empty slice for no match", func(t *testing.T) {
		store := newTestStore(t)

		if _, err := store.AddRecord(ctx, models.NewRecord{Name: "A", ZodiacSign: "овен", Birth: "2001.03.21"}); err != nil {
			t.Fatalf("AddRecord failed: %v", err)
		}

		got, err := store.ListEntriesBySign(ctx, "рыбы")
		if err != nil {
			t.Fatalf("Expected no error for no match, got %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("Expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("Record without sign is stored as NULL", func(t *testing.T) {
		store := newTestStore(t)

		if _, err := store.AddRecord(ctx, models.NewRecord{Name: "B", Birth: "2005.08.16"}); err != nil {
			t.Fatalf("AddRecord failed: %v", err)
		}

		var nulls int
		if err := store.db.QueryRow("SELECT COUNT(*) FROM records WHERE zodiac_sign IS NULL").Scan(&nulls); err != nil {
			t.Fatalf("Failed to count NULL signs: %v", err)
		}
		if nulls != 1 {
			t.Errorf("Expected 1 NULL sign, got %d", nulls)
		}

		all, err := store.ListEntries(ctx)
		if err != nil {
			t.Fatalf("ListEntries failed: %v", err)
		}
		want := []models.Entry{{Name: "B", Birth: "2005.08.16"}}
		if !reflect.DeepEqual(all, want) {
			t.Errorf("ListEntries = %+v, want %+v", all, want)
		}

		filtered, err := store.ListEntriesBySign(ctx, "")
		if err != nil {
			t.Fatalf("ListEntriesBySign failed: %v", err)
		}
		if len(filtered) != 0 {
			t.Errorf("Expected NULL sign never to match, got %+v", filtered)
		}
	})

	t.Run("GetPersonByName returns nil for unknown name", func(t *testing.T) {
		store := newTestStore(t)

		person, err := store.GetPersonByName(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetPersonByName failed: %v", err)
		}
		if person != nil {
			t.Errorf("Expected nil person, got %+v", person)
		}
	})

	t.Run("Foreign key rejects orphaned record", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.db.Exec(
			"INSERT INTO records (zodiac_sign, person_id, birth) VALUES (?, ?, ?)",
			"лев", 999, "2005.08.16",
		)
		if err == nil {
			t.Error("Expected foreign key violation, got nil")
		}
	})
}

func TestAddRecordWithoutSchema(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "bare.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if _, err := store.AddRecord(ctx, models.NewRecord{Name: "A", Birth: "2001.03.21"}); err == nil {
		t.Fatal("Expected error when schema is absent, got nil")
	}

	if err := store.CreateSchema(ctx); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if n := countRows(t, store, "people"); n != 0 {
		t.Errorf("Expected no people after failed write, got %d", n)
	}
}

func TestEndToEnd(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := models.Entry{Name: "A", ZodiacSign: "овен", Birth: "2001.03.21"}
	b := models.Entry{Name: "B", ZodiacSign: "лев", Birth: "2005.08.16"}
	for _, e := range []models.Entry{a, b} {
		if _, err := store.AddRecord(ctx, models.NewRecord{Name: e.Name, ZodiacSign: e.ZodiacSign, Birth: e.Birth}); err != nil {
			t.Fatalf("AddRecord(%s) failed: %v", e.Name, err)
		}
	}

	all, err := store.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	seen := map[models.Entry]bool{}
	for _, e := range all {
		seen[e] = true
	}
	if len(all) != 2 || !seen[a] || !seen[b] {
		t.Errorf("ListEntries = %+v, want both %+v and %+v", all, a, b)
	}

	filtered, err := store.ListEntriesBySign(ctx, "овен")
	if err != nil {
		t.Fatalf("ListEntriesBySign failed: %v", err)
	}
	if !reflect.DeepEqual(filtered, []models.Entry{a}) {
		t.Errorf("ListEntriesBySign = %+v, want [%+v]", filtered, a)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	store, err := Open("")
	if err == nil {
		store.Close()
		t.Fatal("Expected error for empty database path, got nil")
	}
}
