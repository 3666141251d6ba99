package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

type Config struct {
	// Record source
	RecordBackend string
	SQLiteDBPath  string

	// Engine
	ThresholdsFile string
	ParsePolicy    string

	// View cache
	ViewCacheSize int
	ViewCacheTTL  time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		RecordBackend: getEnv("RECORD_BACKEND", "memory"),
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/celebrate.db"),

		ThresholdsFile: getEnv("THRESHOLDS_FILE", ""),
		ParsePolicy:    getEnv("PARSE_POLICY", "skip"),

		ViewCacheSize: getEnvInt("VIEW_CACHE_SIZE", 64),
		ViewCacheTTL:  getEnvDuration("VIEW_CACHE_TTL", 5*time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

var validBackends = []string{"memory", "sqlite"}

// Validate reports every invalid setting at once. It also creates the parent
// directory of the SQLite file when missing.
func (c *Config) Validate() error {
	var result *multierror.Error

	if !slices.Contains(validBackends, c.RecordBackend) {
		result = multierror.Append(result, fmt.Errorf("invalid record backend '%s': must be one of %v", c.RecordBackend, validBackends))
	}

	if c.RecordBackend == "sqlite" {
		if err := ensureDBDir(c.SQLiteDBPath); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if c.ThresholdsFile != "" {
		if _, err := os.Stat(c.ThresholdsFile); err != nil {
			result = multierror.Append(result, fmt.Errorf("thresholds file is not readable: %s", c.ThresholdsFile))
		}
	}

	if c.ParsePolicy != "abort" && c.ParsePolicy != "skip" {
		result = multierror.Append(result, fmt.Errorf("invalid parse policy '%s': must be 'abort' or 'skip'", c.ParsePolicy))
	}

	if c.ViewCacheSize < 1 {
		result = multierror.Append(result, fmt.Errorf("invalid view cache size %d: must be at least 1", c.ViewCacheSize))
	} else if c.ViewCacheSize > 10000 {
		result = multierror.Append(result, fmt.Errorf("invalid view cache size %d: must be at most 10000", c.ViewCacheSize))
	}

	if c.ViewCacheTTL < time.Second {
		result = multierror.Append(result, fmt.Errorf("invalid view cache TTL %v: must be at least 1 second", c.ViewCacheTTL))
	} else if c.ViewCacheTTL > 24*time.Hour {
		result = multierror.Append(result, fmt.Errorf("invalid view cache TTL %v: must be at most 24 hours", c.ViewCacheTTL))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

func ensureDBDir(path string) error {
	if path == "" {
		return errors.New("SQLite database path cannot be empty when using sqlite backend")
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create SQLite database directory '%s': %v", dir, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
