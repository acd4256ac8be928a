package main

import (
	"context"
	"fmt"

	"github.com/unitytechnetwork/Afifi-sub000/internal/client"
	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/metrics"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/internal/tui"
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

	log := logger.NewClientLogger("fireaudit-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	services, err := service.NewServices(storages.KV, cfg.App, metrics.Nop(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	renderer, err := export.New()
	if err != nil {
		log.Fatal().Err(err).Msg("create report renderer")
	}

	ui, err := tui.New(services, renderer, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
