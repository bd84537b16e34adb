// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

/*
Package supervisor provides process supervision for Orbitdesk using suture v4.

# Overview

Long-running services are organized into two layers:

	RootSupervisor ("orbitdesk")
	├── DataSupervisor ("data-layer")
	│   ├── ValueLogGCService (when store.gc_interval > 0)
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing GC pass restarts only the data layer; the HTTP server keeps serving.

Supervisor events (service start, failure, backoff) are logged through
sutureslog, which writes into the shared zerolog pipeline via
logging.NewSlogLogger.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(services.NewValueLogGCService(badgerStore, cfg.Store.GCInterval, cfg.Store.GCDiscardRatio))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

# Thread Safety

All SupervisorTree methods are safe for concurrent use; suture serializes
changes to each supervisor internally.
*/
package supervisor
