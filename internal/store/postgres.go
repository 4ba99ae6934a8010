package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS benchmark_results (
	id SERIAL PRIMARY KEY,
	algorithm TEXT NOT NULL,
	input_size INTEGER NOT NULL,
	input_type TEXT NOT NULL,
	time_seconds DOUBLE PRECISION NOT NULL,
	trials INTEGER NOT NULL
);
`

const postgresInsert = `INSERT INTO benchmark_results (algorithm, input_size, input_type, time_seconds, trials) VALUES ($1, $2, $3, $4, $5)`

// PostgresStore keeps results in a PostgreSQL table.
type PostgresStore struct {
	*sqlStore
}

// NewPostgresStore connects to dsn and applies the schema.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newPostgresStore(db)
}

func newPostgresStore(db *sql.DB) (*PostgresStore, error) {
	s, err := open(db, postgresSchema, postgresInsert)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{s}, nil
}
