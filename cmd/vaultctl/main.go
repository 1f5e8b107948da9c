package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-autofill-vault/internal/adapter"
	"github.com/MKhiriev/go-autofill-vault/internal/client"
	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/tui"
	"github.com/MKhiriev/go-autofill-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("vaultctl")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vaultctl: %v\n", err)
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	vault, err := adapter.NewVaultHTTPClient(cfg.Adapter, cfg.App, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vaultctl: %v\n", err)
		log.Fatal().Err(err).Msg("create vault client")
	}

	ui := tui.New(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	app := client.NewApp(vault, ui, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		if errors.Is(err, tui.ErrUserQuit) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "vaultctl: %v\n", err)
		log.Err(err).Msg("command failed")
		os.Exit(1)
	}
}
