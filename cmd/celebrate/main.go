package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"celebrate/internal/cli"
	"celebrate/internal/engine"
	"celebrate/internal/log"
	"celebrate/internal/metrics"
	"celebrate/internal/views"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "celebrate:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("celebrate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	screen := fs.String("screen", string(views.ScreenHome), "screen to render: home, discover, friends, wishlist, profile or all")
	category := fs.String("category", engine.All, "category chip id")
	filter := fs.String("filter", engine.All, "named filter chip id")
	query := fs.String("q", "", "search text")
	asJSON := fs.Bool("json", false, "print the view as JSON")
	envFile := fs.String("env", ".env", "dotenv file loaded before reading the environment")
	dumpMetrics := fs.Bool("metrics", false, "write view metrics to stderr after rendering")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cli.LoadEnvFile(*envFile); err != nil {
		return fmt.Errorf("load %s: %w", *envFile, err)
	}
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}
	logger := cli.SetupLogger(stderr, cfg.LogLevel)

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()
	ctx, _ = log.WithRunID(ctx)

	app, err := cli.Bootstrap(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to start", log.FieldError, err)
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("Cleanup failed", log.FieldError, err)
		}
	}()

	sel := engine.Selector{Category: *category, Filter: *filter, Query: *query}
	view, err := buildView(ctx, app.Views, *screen, sel)
	if err != nil {
		return err
	}

	if *asJSON {
		err = writeJSON(stdout, view)
	} else {
		err = writeText(stdout, view)
	}
	if err != nil || !*dumpMetrics {
		return err
	}
	return metrics.WriteText(stderr, app.Registry)
}

func buildView(ctx context.Context, svc *views.Service, screen string, sel engine.Selector) (any, error) {
	if screen == "all" {
		return svc.Dashboard(ctx, map[views.Screen]engine.Selector{
			views.ScreenDiscover: sel,
			views.ScreenFriends:  sel,
			views.ScreenWishlist: sel,
			views.ScreenProfile:  sel,
		})
	}

	switch views.Screen(screen) {
	case views.ScreenHome:
		return svc.Home(ctx)
	case views.ScreenDiscover:
		return svc.Discover(ctx, sel)
	case views.ScreenFriends:
		return svc.Friends(ctx, sel)
	case views.ScreenWishlist:
		return svc.Wishlist(ctx, sel)
	case views.ScreenProfile:
		return svc.Profile(ctx, sel)
	default:
		return nil, fmt.Errorf("unknown screen %q", screen)
	}
}
