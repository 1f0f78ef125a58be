package backend

import (
	"fmt"
	"log/slog"

	"racha/internal/blob"
	"racha/internal/config"
)

// Type represents the persistence backend type.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{FileBackend, SQLiteBackend, MemoryBackend}
}

// Config holds configuration for backend creation
type Config struct {
	Type Type

	// File specific
	DataDir string

	// SQLite specific
	SQLiteDB string
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case FileBackend:
		if c.DataDir == "" {
			return fmt.Errorf("data directory is required for the file backend")
		}
	case SQLiteBackend:
		if c.SQLiteDB == "" {
			return fmt.Errorf("SQLite database path is required for the sqlite backend")
		}
	case MemoryBackend:
		// Nothing to validate, memory keeps everything in process.
	}

	return nil
}

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:     backendType,
		DataDir:  appConfig.DataDir,
		SQLiteDB: appConfig.SQLiteDB,
	}, nil
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the blob store and optional cleanup function
type Result struct {
	Blob    blob.Store
	Cleanup CleanupFunc
}

// Open creates the blob store described by the config.
func Open(cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case FileBackend:
		store, err := blob.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file backend", "data_dir", cfg.DataDir)
		return &Result{Blob: store}, nil

	case SQLiteBackend:
		store, err := blob.NewSQLiteStore(cfg.SQLiteDB)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDB)
		return &Result{Blob: store, Cleanup: store.Close}, nil

	case MemoryBackend:
		logger.Info("Initialized memory backend")
		return &Result{Blob: blob.NewMemory()}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
