package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-tracker/internal/config"
	handlerhttp "github.com/MKhiriev/go-expense-tracker/internal/handler/http"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/server"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("expense-tracker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)
	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
