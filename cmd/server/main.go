package main

import (
	"context"
	"fmt"

	"github.com/gillani-market/shoprent/internal/config"
	httphandler "github.com/gillani-market/shoprent/internal/handler/http"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/server"
	"github.com/gillani-market/shoprent/internal/service"
	"github.com/gillani-market/shoprent/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("rent-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("environment", cfg.App.Environment).Msg("received configs")

	ctx := context.Background()
	exitOnFail := cfg.Storage.DB.ExitOnFail || cfg.IsProduction()
	db, err := store.Connect(ctx, cfg.Storage.DB, exitOnFail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if db.Connected() {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error running migrations")
		}
	} else {
		log.Warn().Msg("starting without a database connection")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	if err = services.AuthService.EnsureSeedAdmin(ctx, cfg.App.Seed); err != nil {
		log.Error().Err(err).Msg("error seeding admin account")
	}

	handler := httphandler.NewHandler(services, db, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
