package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Abla25/roomradar/internal/storage/factory"
	"github.com/Abla25/roomradar/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CleanupConfig struct {
	StorageConfig factory.StorageConfig
	DryRun        bool
}

func (as *AppConfig) Load() (*CleanupConfig, error) {
	dryRun := flag.Bool("dry-run", false, "probe links without expiring anything")
	flag.Parse()

	err := env.LoadDotEnv(as.ENV, "cmd/cleanup/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &CleanupConfig{
		StorageConfig: *storageCfg,
		DryRun:        *dryRun,
	}, nil
}
