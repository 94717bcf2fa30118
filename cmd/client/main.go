package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-news-kiosk/internal/adapter"
	"github.com/MKhiriev/go-news-kiosk/internal/client"
	"github.com/MKhiriev/go-news-kiosk/internal/config"
	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/internal/store"
	"github.com/MKhiriev/go-news-kiosk/internal/tui"
	"github.com/MKhiriev/go-news-kiosk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("news-kiosk", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("news-kiosk", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	feed, err := adapter.NewHTTPArticleFeed(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create article feed")
	}

	services, err := service.NewClientServices(storages, feed, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	buildInfo := models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)
	if err = storages.Close(); err != nil {
		log.Error().Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
