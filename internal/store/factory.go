package store

import (
	"context"
	"fmt"

	"celebrate/internal/config"
	"celebrate/internal/log"
	"celebrate/internal/store/memory"
	"celebrate/internal/store/sqlite"
)

// BackendType names a record source implementation.
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	SQLiteBackend BackendType = "sqlite"
)

func (bt BackendType) String() string {
	return string(bt)
}

func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// BackendTypes returns every supported backend.
func BackendTypes() []BackendType {
	return []BackendType{MemoryBackend, SQLiteBackend}
}

// Config selects and parameterises a record source.
type Config struct {
	Type         BackendType
	SQLiteDBPath string
}

// FromAppConfig converts the application config to a store config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(appConfig.RecordBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid record backend in config: %s", appConfig.RecordBackend)
	}

	return Config{
		Type:         backendType,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	if c.Type == SQLiteBackend && c.SQLiteDBPath == "" {
		return fmt.Errorf("SQLite database path is required for sqlite backend")
	}
	return nil
}

// CleanupFunc releases resources held by a record source.
type CleanupFunc func() error

// Result is a ready catalog and the function that releases it.
// Cleanup is never nil.
type Result struct {
	Catalog Catalog
	Backend BackendType
	Cleanup CleanupFunc
}

type Factory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) *Factory {
	return &Factory{logger: log.OrDefault(logger, log.ComponentStore)}
}

// Create builds the record source named by cfg.
func (f *Factory) Create(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case SQLiteBackend:
		repo, err := sqlite.NewRepository(cfg.SQLiteDBPath, f.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite record source: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", log.FieldOperation, log.OpLoad, log.FieldBackend, cfg.Type, "db_path", cfg.SQLiteDBPath)
		return &Result{Catalog: repo, Backend: cfg.Type, Cleanup: repo.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend", log.FieldOperation, log.OpLoad, log.FieldBackend, cfg.Type)
		return &Result{
			Catalog: memory.NewWithFixtures(),
			Backend: cfg.Type,
			Cleanup: func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
