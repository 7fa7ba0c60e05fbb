package main

import (
	"fmt"
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

type IngestConfig struct {
	StorageConfig    factory.StorageConfig
	OpenRouterAPIKey string
	OpenRouterModel  string
}

func (as *AppConfig) Load() (*IngestConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/ingest/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable is not set")
	}

	return &IngestConfig{
		StorageConfig:    *storageCfg,
		OpenRouterAPIKey: apiKey,
		OpenRouterModel:  os.Getenv("OPENROUTER_MODEL"),
	}, nil
}
