package sqlite

import (
	"context"
	"database/sql"
)

// schema creates the two tables. people must exist before records because of
// the foreign key. people.name has no UNIQUE constraint; AddRecord's lookup is
// the only deduplication and it races under concurrent writers.
const schema = `
CREATE TABLE IF NOT EXISTS people (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    zodiac_sign TEXT,
    person_id INTEGER NOT NULL,
    birth TEXT NOT NULL,
    FOREIGN KEY (person_id) REFERENCES people(id)
);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
