package main

import (
	"fmt"

	"github.com/MKhiriev/go-focus-keeper/internal/adapter"
	"github.com/MKhiriev/go-focus-keeper/internal/client"
	"github.com/MKhiriev/go-focus-keeper/internal/config"
	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/internal/service"
	"github.com/MKhiriev/go-focus-keeper/internal/store"
	"github.com/MKhiriev/go-focus-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("focus-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	engine, err := adapter.NewHTTPEngineAdapter(cfg.Engine, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create engine adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, engine, log)

	ui := tui.New(services, cfg, log)

	app, err := client.NewApp(services, engine, ui, cfg, log)
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
