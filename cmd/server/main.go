// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/parse-guard/internal/analyzer"
	"github.com/MKhiriev/parse-guard/internal/cache"
	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/handler"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/server"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/internal/telemetry"
	"github.com/MKhiriev/parse-guard/internal/workers"
	"github.com/MKhiriev/parse-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	_, _ = buildInfo.WriteTo(os.Stdout)

	log := logger.NewLogger("parse-guard-server")
	if err := run(log, buildInfo); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(log *logger.Logger, buildInfo models.AppBuildInfo) error {
	ctx := context.Background()

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Telemetry, log)
	if err != nil {
		return fmt.Errorf("error initialising tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	statsCache, err := cache.NewStatsCache(ctx, cfg.Storage.Cache, log)
	if err != nil {
		return fmt.Errorf("error creating stats cache: %w", err)
	}

	documentAnalyzer, err := analyzer.New(ctx, cfg.AI, log)
	if err != nil {
		return fmt.Errorf("error creating analyzer: %w", err)
	}

	services, err := service.NewServices(storages, statsCache, documentAnalyzer, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	metrics := telemetry.NewMetrics()

	handlers, err := handler.NewHandlers(services, storages.DB, metrics, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	jobs := []workers.Worker{
		workers.NewOverdueWorker(services.OverdueService, metrics, cfg.Workers.OverdueSchedule),
	}
	if handlers.GRPC != nil {
		jobs = append(jobs, workers.NewStorageHealthWorker(handlers.GRPC, workers.DefaultStorageHealthSchedule))
	}

	backgroundWorkers, err := workers.NewWorkers(log, jobs...)
	if err != nil {
		return fmt.Errorf("error creating workers: %w", err)
	}

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
