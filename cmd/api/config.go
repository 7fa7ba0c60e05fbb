package main

import (
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

type APIConfig struct {
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*APIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &APIConfig{
		StorageConfig: *storageCfg,
	}, nil
}
