package database

import (
	"database/sql"
	"fmt"

	"assettrack/internal/repository"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the configured backend and returns the goqu dialect that
// matches it.
func Open(driver, dbURL string) (*sql.DB, string, error) {
	switch driver {
	case DriverPostgres:
		db, err := NewPostgresConnection(dbURL)
		return db, repository.DialectPostgres, err
	case DriverSQLite:
		db, err := NewSQLiteConnection(dbURL)
		return db, repository.DialectSQLite, err
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
