package main

import (
	"context"
	"os"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-autofill-vault/internal/adapter"
	"github.com/MKhiriev/go-autofill-vault/internal/clock"
	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/handler"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/server"
	"github.com/MKhiriev/go-autofill-vault/internal/service"
	"github.com/MKhiriev/go-autofill-vault/internal/store"
	"github.com/MKhiriev/go-autofill-vault/internal/workers"
	"github.com/MKhiriev/go-autofill-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// The server handles SIGINT itself; key buffers are wiped once it returns.
	defer memguard.Purge()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("vaultd")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("dsn", cfg.Storage.DB.DSN).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	clk := clock.Real()

	surfaces, err := adapter.NewSurfaces(*cfg, clk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating surfaces")
	}

	services, err := service.NewServices(storages, surfaces, *cfg, clk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services.AutoLockJob), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
