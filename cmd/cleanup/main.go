package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Abla25/roomradar/internal/cities"
	"github.com/Abla25/roomradar/internal/cleanup"
	"github.com/Abla25/roomradar/internal/export"
	"github.com/Abla25/roomradar/internal/storage/factory"
)

func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := factory.NewListingStore(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create listing store", "error", err)
		os.Exit(1)
	}

	esIndexer, _, err := factory.NewSearchMirror(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create search mirror", "error", err)
		os.Exit(1)
	}

	var opts []cleanup.Option
	if cfg.DryRun {
		opts = append(opts, cleanup.WithDryRun())
	}
	if esIndexer != nil {
		opts = append(opts, cleanup.WithIndexer(esIndexer))
	}

	city := cities.Current()
	report, err := cleanup.NewSweeper(store, opts...).Run(ctx, city.Name)
	if err != nil {
		slog.Error("cleanup sweep failed", "error", err)
		os.Exit(1)
	}

	if !cfg.DryRun && report.Expired > 0 {
		if _, err := export.Write(ctx, store, city.Name, city.ExportPath()); err != nil {
			slog.Error("failed to refresh public snapshot", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("cleanup finished",
		"city", city.Name,
		"checked", report.Checked,
		"dead", report.Dead,
		"expired", report.Expired,
		"dry_run", cfg.DryRun)
}
