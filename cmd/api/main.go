// Package main RoomRadar API
// @title RoomRadar API
// @version 1.0
// @description Room rental listings aggregated from public feeds, censored and deduplicated
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/Abla25/roomradar/docs"
	"github.com/Abla25/roomradar/internal/cities"
	"github.com/Abla25/roomradar/internal/router"
	"github.com/Abla25/roomradar/internal/server"
	"github.com/Abla25/roomradar/internal/storage/factory"
	pkgserver "github.com/Abla25/roomradar/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "RoomRadar API is running")
	})

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	store, err := factory.NewListingStore(s.Context(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create listing store", "error", err)
		os.Exit(1)
	}

	_, searcher, err := factory.NewSearchMirror(s.Context(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create search mirror", "error", err)
		os.Exit(1)
	}

	city := cities.Current()
	router.NewListingsRouter(s.Echo, store, searcher, city.Name).Bind()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
