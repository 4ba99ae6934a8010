package store

import (
	"fmt"
	"strings"
)

// DefaultSQLitePath is used when the sqlite store has no DSN.
const DefaultSQLitePath = "sortbench.db"

// StoreConfig holds configuration for the storage backend
type StoreConfig struct {
	Type string // "sqlite" or "postgres"
	DSN  string // File path for SQLite, connection string for Postgres
}

// NewStore creates a new Store instance based on the provided configuration
func NewStore(config StoreConfig) (Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.DSN == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.DSN)
	case "sqlite", "sqlite3":
		if config.DSN == "" {
			config.DSN = DefaultSQLitePath
		}
		return NewSQLiteStore(config.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStore, config.Type)
	}
}
