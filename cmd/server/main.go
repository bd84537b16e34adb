// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

// Orbitdesk API serves satellite records from an embedded store.
//
// @title Orbitdesk API
// @version 1.0
// @description Satellite record management: list, look up, add, update and delete satellite records.
// @description
// @description Reads return bare records or arrays. Writes return {message, <payload>} envelopes.
// @description Failures return {message}, plus an error field on add and update.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/orbitdesk
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/orbitdesk/docs" // Import generated swagger docs
	"github.com/tomtom215/orbitdesk/internal/api"
	"github.com/tomtom215/orbitdesk/internal/config"
	"github.com/tomtom215/orbitdesk/internal/logging"
	"github.com/tomtom215/orbitdesk/internal/metrics"
	"github.com/tomtom215/orbitdesk/internal/store"
	"github.com/tomtom215/orbitdesk/internal/supervisor"
	"github.com/tomtom215/orbitdesk/internal/supervisor/services"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		// Default logger; config not yet available
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", Version).
		Str("addr", cfg.Server.Addr()).
		Str("store_path", cfg.Store.Path).
		Bool("store_in_memory", cfg.Store.InMemory).
		Strs("cors_origins", cfg.Security.CORSOrigins).
		Msg("Starting Orbitdesk")
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}

	metrics.SetAppInfo(Version)

	badgerStore, err := store.Open(cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open satellite store")
	}

	if code := run(cfg, badgerStore, startTime); code != 0 {
		closeStore(badgerStore)
		os.Exit(code)
	}
	closeStore(badgerStore)
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the service and blocks until shutdown. It returns a process exit
// code so main can close the store before exiting.
func run(cfg *config.Config, badgerStore *store.BadgerStore, startTime time.Time) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gateway := store.NewGuarded(badgerStore, cfg.Store)

	if cfg.Store.SeedFile != "" {
		res, err := store.SeedFromFile(ctx, gateway, cfg.Store.SeedFile)
		if err != nil {
			logging.Error().Err(err).Str("file", cfg.Store.SeedFile).Msg("Failed to seed satellites")
			return 1
		}
		logging.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("Seed file applied")
	}

	handler := api.NewHandler(gateway, cfg.API)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}

	tree.AddDataService(services.NewUptimeService(startTime, 15*time.Second))
	if cfg.Store.GCInterval > 0 && !cfg.Store.InMemory {
		tree.AddDataService(services.NewValueLogGCService(badgerStore, cfg.Store.GCInterval, cfg.Store.GCDiscardRatio))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
		return 1
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return 0
}

func closeStore(s *store.BadgerStore) {
	if err := s.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing satellite store")
	}
}
