package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS benchmark_results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	algorithm TEXT NOT NULL,
	input_size INTEGER NOT NULL,
	input_type TEXT NOT NULL,
	time_seconds REAL NOT NULL,
	trials INTEGER NOT NULL
);
`

const sqliteInsert = `INSERT INTO benchmark_results (algorithm, input_size, input_type, time_seconds, trials) VALUES (?, ?, ?, ?, ?)`

// SQLiteStore keeps results in a local SQLite file.
type SQLiteStore struct {
	*sqlStore
}

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s, err := open(db, sqliteSchema, sqliteInsert)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{s}, nil
}
