package main

import (
	"context"
	"fmt"
	"time"

	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/handler"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/metrics"
	"github.com/unitytechnetwork/Afifi-sub000/internal/server"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/internal/telemetry"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("fireaudit-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initialising telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	recorder := metrics.NewPrometheusRecorder()
	services, err := service.NewServices(storages.KV, cfg.App, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	renderer, err := export.New()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating report renderer")
	}

	handlers, err := handler.NewHandlers(services, renderer, recorder, buildInfo, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
