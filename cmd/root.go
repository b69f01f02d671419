package cmd

import (
	"context"
	"fmt"
	"os"

	"assettrack/internal/core/config"
	"assettrack/internal/core/container"
	"assettrack/internal/core/logger"
	"assettrack/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}

		log := logger.NewLogger(cfg.AppEnv)
		defer func() { _ = log.Sync() }()

		migrationDir, _ := cmd.Flags().GetString("dir")
		if err := database.RunMigrations(cfg.DBDriver, cfg.DatabaseURL, migrationDir, log); err != nil {
			log.Error("Migration failed", zap.Error(err))
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:           "assettrack",
		Short:         "IT asset tracking service",
		Version:       container.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	MigrateCmd.Flags().String("dir", "./migrations", "Directory containing the per-driver migration folders")
	rootCmd.AddCommand(ServeCmd, MigrateCmd, SeedCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
