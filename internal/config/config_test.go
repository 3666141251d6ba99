package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
)

func validConfig() Config {
	return Config{
		RecordBackend: "memory",
		SQLiteDBPath:  "./test.db",
		ParsePolicy:   "skip",
		ViewCacheSize: 64,
		ViewCacheTTL:  5 * time.Minute,
		LogLevel:      "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	tmpDir := t.TempDir()
	thresholds := filepath.Join(tmpDir, "thresholds.yaml")
	if err := os.WriteFile(thresholds, []byte("birthday:\n  default: normal\n"), 0644); err != nil {
		t.Fatalf("Failed to create thresholds file: %v", err)
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid memory backend config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			mutate: func(c *Config) {
				c.RecordBackend = "sqlite"
				c.SQLiteDBPath = filepath.Join(tmpDir, "nested", "celebrate.db")
			},
			wantErr: false,
		},
		{
			name:        "invalid record backend",
			mutate:      func(c *Config) { c.RecordBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid record backend 'sheets': must be one of [memory sqlite]",
		},
		{
			name: "sqlite backend missing database path",
			mutate: func(c *Config) {
				c.RecordBackend = "sqlite"
				c.SQLiteDBPath = ""
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name:    "existing thresholds file",
			mutate:  func(c *Config) { c.ThresholdsFile = thresholds },
			wantErr: false,
		},
		{
			name:        "missing thresholds file",
			mutate:      func(c *Config) { c.ThresholdsFile = filepath.Join(tmpDir, "missing.yaml") },
			wantErr:     true,
			errorString: "thresholds file is not readable",
		},
		{
			name:        "parse policy must be explicit",
			mutate:      func(c *Config) { c.ParsePolicy = "" },
			wantErr:     true,
			errorString: "invalid parse policy '': must be 'abort' or 'skip'",
		},
		{
			name:        "cache size too small",
			mutate:      func(c *Config) { c.ViewCacheSize = 0 },
			wantErr:     true,
			errorString: "invalid view cache size 0: must be at least 1",
		},
		{
			name:        "cache size too large",
			mutate:      func(c *Config) { c.ViewCacheSize = 20000 },
			wantErr:     true,
			errorString: "invalid view cache size 20000: must be at most 10000",
		},
		{
			name:        "cache TTL too short",
			mutate:      func(c *Config) { c.ViewCacheTTL = 500 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid view cache TTL 500ms: must be at least 1 second",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Config.Validate() error = %v, want it to contain %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{RecordBackend: "nope", ParsePolicy: "maybe", ViewCacheSize: 0, LogLevel: "info"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"record backend", "parse policy", "view cache size", "view cache TTL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) != 4 {
		t.Errorf("expected 4 collected errors, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		for _, key := range []string{"RECORD_BACKEND", "SQLITE_DB_PATH", "THRESHOLDS_FILE", "PARSE_POLICY", "VIEW_CACHE_SIZE", "VIEW_CACHE_TTL", "LOG_LEVEL"} {
			t.Setenv(key, "")
		}

		cfg := Load()

		if cfg.RecordBackend != "memory" {
			t.Errorf("Load() RecordBackend = %v, want memory", cfg.RecordBackend)
		}
		if cfg.SQLiteDBPath != "./data/celebrate.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/celebrate.db", cfg.SQLiteDBPath)
		}
		if cfg.ParsePolicy != "skip" {
			t.Errorf("Load() ParsePolicy = %v, want skip", cfg.ParsePolicy)
		}
		if cfg.ViewCacheSize != 64 {
			t.Errorf("Load() ViewCacheSize = %v, want 64", cfg.ViewCacheSize)
		}
		if cfg.ViewCacheTTL != 5*time.Minute {
			t.Errorf("Load() ViewCacheTTL = %v, want 5m", cfg.ViewCacheTTL)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("default config does not validate: %v", err)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("RECORD_BACKEND", "sqlite")
		t.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		t.Setenv("PARSE_POLICY", "abort")
		t.Setenv("VIEW_CACHE_SIZE", "8")
		t.Setenv("VIEW_CACHE_TTL", "45s")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.RecordBackend != "sqlite" {
			t.Errorf("Load() RecordBackend = %v, want sqlite", cfg.RecordBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.ParsePolicy != "abort" {
			t.Errorf("Load() ParsePolicy = %v, want abort", cfg.ParsePolicy)
		}
		if cfg.ViewCacheSize != 8 {
			t.Errorf("Load() ViewCacheSize = %v, want 8", cfg.ViewCacheSize)
		}
		if cfg.ViewCacheTTL != 45*time.Second {
			t.Errorf("Load() ViewCacheTTL = %v, want 45s", cfg.ViewCacheTTL)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		t.Setenv("VIEW_CACHE_SIZE", "invalid")
		t.Setenv("VIEW_CACHE_TTL", "invalid")

		cfg := Load()

		if cfg.ViewCacheSize != 64 {
			t.Errorf("Load() ViewCacheSize = %v, want 64 (default for invalid input)", cfg.ViewCacheSize)
		}
		if cfg.ViewCacheTTL != 5*time.Minute {
			t.Errorf("Load() ViewCacheTTL = %v, want 5m (default for invalid input)", cfg.ViewCacheTTL)
		}
	})
}
