package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Abla25/roomradar/internal/cities"
	"github.com/Abla25/roomradar/internal/classify"
	"github.com/Abla25/roomradar/internal/export"
	"github.com/Abla25/roomradar/internal/feeds"
	"github.com/Abla25/roomradar/internal/pipeline"
	"github.com/Abla25/roomradar/internal/rejectcache"
	"github.com/Abla25/roomradar/internal/storage/factory"
	"github.com/Abla25/roomradar/internal/zone"
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

	city := cities.Current()
	feedURLs := city.FeedURLs()
	if len(feedURLs) == 0 {
		slog.Error("no feed urls configured", "city", city.Name)
		os.Exit(1)
	}

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

	provider := classify.NewOpenRouterProvider(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)

	pipelineCfg := pipeline.Config{
		City:       city.Name,
		Fetcher:    feeds.NewSource(city.Name, feedURLs),
		Classifier: classify.NewClassifier(provider),
		Zones:      zone.NewClassifier(city.MacroZones),
		Rejects:    rejectcache.New(city.RejectCachePath()),
		Store:      store,
	}
	if esIndexer != nil {
		pipelineCfg.Indexer = esIndexer
	}

	stats, err := pipeline.New(pipelineCfg).Run(ctx)
	if err != nil {
		slog.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}

	if _, err := export.Write(ctx, store, city.Name, city.ExportPath()); err != nil {
		slog.Error("failed to write public snapshot", "error", err)
		os.Exit(1)
	}

	slog.Info("ingest finished",
		"city", city.Name,
		"fetched", stats.Fetched,
		"created", stats.Created,
		"duplicates", stats.Duplicates,
		"rejected", stats.Rejected)
}
