package cmd

import (
	"fmt"

	"assettrack/internal/core/config"
	"assettrack/internal/core/container"
	"assettrack/internal/core/logger"
	"assettrack/internal/core/metrics"
	"assettrack/internal/database"
	"assettrack/internal/seed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin account and load sample data into an empty directory.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		if cfg.AdminPassword == "" {
			return fmt.Errorf("ADMIN_PASSWORD environment variable is not set")
		}

		log := logger.NewLogger(cfg.AppEnv)
		defer func() { _ = log.Sync() }()

		db, dialect, err := database.Open(cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()

		app := container.NewAppContainer(cfg, db, dialect, log, metrics.New())
		defer app.Close()

		summary, err := seed.Run(cmd.Context(), app, seed.AdminAccount{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
			Email:    cfg.AdminEmail,
			FullName: cfg.AdminFullName,
		}, log)
		if err != nil {
			return err
		}

		log.Info("Seed finished",
			zap.Bool("admin_created", summary.AdminCreated),
			zap.Int("assets", summary.Assets),
		)
		return nil
	},
}
