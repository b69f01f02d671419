package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"assettrack/internal/core/config"
	"assettrack/internal/core/container"
	"assettrack/internal/core/logger"
	"assettrack/internal/core/metrics"
	"assettrack/internal/core/routes"
	"assettrack/internal/core/validation"
	"assettrack/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log := logger.NewLogger(cfg.AppEnv)
		defer func() { _ = log.Sync() }()

		return serve(cmd.Context(), cfg, log)
	},
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	db, dialect, err := database.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	log.Info("Connected to the database", zap.String("driver", cfg.DBDriver))

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DBDriver, cfg.DatabaseURL, cfg.MigrationsDir, log); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	validation.Register()

	app := container.NewAppContainer(cfg, db, dialect, log, metrics.New())
	defer app.Close()

	srv := &http.Server{
		Addr:         cfg.AppHost,
		Handler:      routes.NewRouter(app),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.AppHost), zap.String("version", container.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced shutdown", zap.Error(err))
		return err
	}

	log.Info("Server stopped")
	return nil
}
