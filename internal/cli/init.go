// Package cli provides common initialization utilities shared by
// cmd/racha and cmd/rachactl.
package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"racha/internal/backend"
	"racha/internal/config"
	"racha/internal/log"
	"racha/internal/store"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging from the config and sets
// it as the process default.
func SetupLogger(cfg *config.Config, component string) *log.Logger {
	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: component,
		Format:    cfg.LogFormat,
	}).WithComponent(component)
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenLedger opens the configured blob backend and loads the ledger.
// The returned cleanup function is nil when the backend needs none.
func OpenLedger(ctx context.Context, cfg *config.Config, logger *log.Logger) (*store.Ledger, backend.CleanupFunc, error) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	result, err := backend.Open(backendCfg, logger.Logger)
	if err != nil {
		return nil, nil, err
	}

	ledger := store.New(result.Blob)
	if err := ledger.Load(ctx); err != nil {
		if result.Cleanup != nil {
			_ = result.Cleanup()
		}
		return nil, nil, err
	}

	return ledger, result.Cleanup, nil
}
