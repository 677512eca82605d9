package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/handler"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/routes"
	"github.com/MKhiriev/go-route-loader/internal/server"
	"github.com/MKhiriev/go-route-loader/internal/service"
	"github.com/MKhiriev/go-route-loader/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("route-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	storages, err := store.NewSecretStore(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	services := service.NewServices(storages, *cfg, reg, log)

	registry := routes.Builtin(buildVersion)
	if cfg.Routes.Manifest != "" {
		manifest, err := routes.LoadManifest(cfg.Routes.Manifest)
		if err != nil {
			log.Fatal().Err(err).Str("manifest", cfg.Routes.Manifest).Msg("error loading route manifest")
		}
		registry.UseManifest(manifest)
	}

	plan, err := routes.LoadDir(cfg.Routes.Dir, cfg.Routes.Suffix)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Routes.Dir).Msg("error loading routes")
	}
	log.Info().Int("routes", len(plan)).Str("dir", cfg.Routes.Dir).Msg("routes loaded")

	handlers, err := handler.NewHandlers(services, reg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, plan, registry, cfg.Server, log)
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
