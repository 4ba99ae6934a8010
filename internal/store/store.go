package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
)

// ErrUnsupportedStore is returned by NewStore for an unknown store type.
var ErrUnsupportedStore = errors.New("unsupported store type")

// Store persists the results of the most recent run.
type Store interface {
	// ReplaceResults makes results the only rows in the table.
	ReplaceResults(ctx context.Context, results []benchmark.Result) error
	// LoadResults returns the stored results in insertion order.
	LoadResults(ctx context.Context) ([]benchmark.Result, error)
	Close() error
}

// sqlStore holds the queries shared by both backends; only the DDL and the
// placeholder syntax differ.
type sqlStore struct {
	db     *sql.DB
	insert string
}

func (s *sqlStore) ReplaceResults(ctx context.Context, results []benchmark.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM benchmark_results`); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, s.insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, r.Algorithm, r.InputSize, r.InputType.String(), r.TimeSeconds, r.Trials); err != nil {
			return fmt.Errorf("failed to insert result for %s: %w", r.Algorithm, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}
	return nil
}

func (s *sqlStore) LoadResults(ctx context.Context) ([]benchmark.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT algorithm, input_size, input_type, time_seconds, trials FROM benchmark_results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []benchmark.Result
	for rows.Next() {
		var (
			r         benchmark.Result
			inputType string
		)
		if err := rows.Scan(&r.Algorithm, &r.InputSize, &inputType, &r.TimeSeconds, &r.Trials); err != nil {
			return nil, err
		}
		if r.InputType, err = generator.ParseInputType(inputType); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close closes the database connection
func (s *sqlStore) Close() error {
	return s.db.Close()
}

// open pings db and creates the results table.
func open(db *sql.DB, schema, insert string) (*sqlStore, error) {
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &sqlStore{db: db, insert: insert}, nil
}
