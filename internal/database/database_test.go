package database

import (
	"path/filepath"
	"testing"

	"assettrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenUnsupportedDriver(t *testing.T) {
	_, _, err := Open("mysql", "whatever")
	assert.EqualError(t, err, `unsupported database driver "mysql"`)
}

func TestSQLiteMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.db")

	require.NoError(t, RunMigrations(DriverSQLite, path, "../../migrations", zap.NewNop()))
	require.NoError(t, RunMigrations(DriverSQLite, path, "../../migrations", zap.NewNop()), "second run is a no-op")

	db, dialect, err := Open(DriverSQLite, path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, repository.DialectSQLite, dialect)

	for _, table := range []string{"departments", "users", "admins", "assets", "asset_history"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, table)
	}

	var foreignKeys int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)
}

func TestRunMigrationsRequiresURL(t *testing.T) {
	assert.Error(t, RunMigrations(DriverPostgres, "", "../../migrations", zap.NewNop()))
}

func TestSQLiteLowerFoldsUnicode(t *testing.T) {
	db, err := NewSQLiteConnection(filepath.Join(t.TempDir(), "lower.db"))
	require.NoError(t, err)
	defer db.Close()

	var lowered string
	require.NoError(t, db.QueryRow(`SELECT lower('ÜMIT Çelik')`).Scan(&lowered))
	assert.Equal(t, "ümit çelik", lowered)

	var null *string
	require.NoError(t, db.QueryRow(`SELECT lower(NULL)`).Scan(&null))
	assert.Nil(t, null)
}
