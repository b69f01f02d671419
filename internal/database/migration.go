package database

import (
	"fmt"
	"path/filepath"

	"assettrack/internal/database/migration"

	"go.uber.org/zap"
)

// RunMigrations applies every pending migration from migrationsDir/<driver>.
func RunMigrations(driver, dbURL, migrationsDir string, logger *zap.Logger) error {
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	absPath, err := filepath.Abs(filepath.Join(migrationsDir, driver))
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	migrationsURL := "file://" + absPath

	databaseURL := dbURL
	if driver == DriverSQLite {
		databaseURL = "sqlite://" + dbURL
	}

	return migration.Migrate(databaseURL, migrationsURL, true, logger)
}
