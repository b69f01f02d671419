// Package testdb provides an in-memory SQLite repository with the production
// schema applied, for repository and service tests.
package testdb

import (
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"assettrack/internal/database"
	"assettrack/internal/repository"

	"github.com/stretchr/testify/require"
)

func New(t testing.TB) *repository.Repository {
	t.Helper()

	require.NoError(t, database.RegisterSQLiteFunctions())

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	schema, err := os.ReadFile(filepath.Join(migrationsDir(), "000001_init.up.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return repository.NewRepository(db, repository.DialectSQLite)
}

// Exec runs raw fixture statements.
func Exec(t testing.TB, repo *repository.Repository, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		_, err := repo.DB.Exec(stmt)
		require.NoError(t, err)
	}
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations", "sqlite")
}
