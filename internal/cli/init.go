// Package cli consolidates process bootstrap: environment, logging,
// configuration and store selection for cmd/outlay.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"outlay/internal/config"
	applog "outlay/internal/log"
	"outlay/internal/store"
	"outlay/internal/store/memory"
	"outlay/internal/store/sqlite"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the configured level and
// installs it as the process default.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(applog.Config{Level: level, Component: applog.ComponentApp})
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}

// OpenStore selects and opens the configured slot store. The returned
// cleanup func is nil for backends without resources to release.
func OpenStore(logger *applog.Logger, cfg *config.Config) (store.Store, func() error) {
	switch cfg.StoreBackend {
	case "sqlite":
		s, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open SQLite store",
				applog.FieldError, err.Error(), "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		logger.Info("Opened SQLite store", "path", cfg.SQLiteDBPath)
		return s, s.Close
	default:
		logger.Info("Using in-memory store; data will not survive restarts")
		return memory.New(), nil
	}
}

// GracefulShutdown sets up signal handling for graceful shutdown.
// Returns a context cancelled on shutdown signals and a channel that
// closes once cleanup has run.
func GracefulShutdown(logger *applog.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}
		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(2 * time.Second):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}
