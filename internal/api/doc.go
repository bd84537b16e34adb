// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

/*
Package api provides the HTTP REST API layer for Orbitdesk.

Key Components:

  - Router: chi route table and middleware stack
  - Handler: request handlers for the satellite and health endpoints
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories built from config
  - statusFor: the single mapping from store error kinds to HTTP statuses

Endpoints:

	GET    /api/allsatellite              list every satellite
	GET    /api/satellite?name=<name>     first satellite with an exact name
	DELETE /api/delsatellite/{id}         delete by business id
	POST   /api/addsatellite              create from a full record
	PUT    /api/updatesatellite/{id}      partial update by business id
	GET    /api/health/live               liveness probe
	GET    /api/health/ready              readiness probe with record count
	GET    /metrics                       Prometheus exposition
	GET    /swagger/*                     OpenAPI UI

Response bodies keep the legacy shape clients already depend on: bare records
or arrays on reads, and {message, <payload>} envelopes on writes. Failures are
{message} on read/delete paths and {message, error} on add/update paths.

Validation failures are reported as 500 rather than 400, again to preserve the
existing client contract.

Usage Example:

	gw := store.NewGuarded(badgerStore, cfg.Store)
	handler := api.NewHandler(gw, cfg.API)
	router := api.NewRouter(handler, cfg)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
