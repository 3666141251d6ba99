// Package cli provides the initialization steps shared by the commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"

	"celebrate/internal/config"
	"celebrate/internal/engine"
	"celebrate/internal/log"
	"celebrate/internal/metrics"
	"celebrate/internal/store"
	"celebrate/internal/views"
)

// SetupLogger builds the application logger at the given level and installs
// it as the slog default. Records are text, except JSON when w is a file that
// is not a terminal (redirected output collected by a log shipper).
func SetupLogger(w io.Writer, level string) *log.Logger {
	opts := &slog.HandlerOptions{Level: log.ParseLevel(level)}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := log.New(log.Config{Component: log.ComponentApp, Handler: handler})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads a .env file for local development. A missing file is not
// an error; any other failure is returned.
func LoadEnvFile(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// LoadAndValidateConfig loads configuration from the environment and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// App is a fully wired screen service with its record source.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	Views    *views.Service
	Backend  store.BackendType
	Registry *prometheus.Registry
	cleanup  store.CleanupFunc
}

// Bootstrap wires the record source, threshold tables and view service from cfg.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	logger = log.OrDefault(logger, log.ComponentApp)

	storeCfg, err := store.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	policy, err := engine.ParsePolicyFromString(cfg.ParsePolicy)
	if err != nil {
		return nil, err
	}
	thresholds, err := config.LoadThresholds(cfg.ThresholdsFile, logger)
	if err != nil {
		return nil, fmt.Errorf("load thresholds: %w", err)
	}

	res, err := store.NewFactory(logger).Create(ctx, storeCfg)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	svc, err := views.NewService(res.Catalog, thresholds, views.Options{
		ParsePolicy: policy,
		CacheSize:   cfg.ViewCacheSize,
		CacheTTL:    cfg.ViewCacheTTL,
		Logger:      logger,
		Metrics:     metrics.New(reg),
	})
	if err != nil {
		res.Cleanup()
		return nil, err
	}

	logger.Info("Application ready",
		log.FieldOperation, log.OpStartup,
		log.FieldBackend, res.Backend,
		"parse_policy", policy.String())

	return &App{
		Config:   cfg,
		Logger:   logger,
		Views:    svc,
		Backend:  res.Backend,
		Registry: reg,
		cleanup:  res.Cleanup,
	}, nil
}

// Close releases the view service and the record source.
func (a *App) Close() error {
	a.Views.Close()
	return a.cleanup()
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
