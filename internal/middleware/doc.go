// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

/*
Package middleware provides the chi-compatible HTTP middleware used by the
Orbitdesk router.

Key Components:

  - RequestID: X-Request-ID propagation and logging context
  - AccessLog: one structured zerolog line per request
  - PrometheusMetrics: request counters and latency histograms labelled by
    chi route pattern
  - Compression: gzip for clients sending Accept-Encoding: gzip

Middleware Stack:

Every middleware has the func(http.Handler) http.Handler shape so it plugs
into chi directly:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(api.Recoverer)
	r.Route("/api", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.AccessLog)
	    r.Use(middleware.Compression)
	    r.Get("/allsatellite", h.ListSatellites)
	})

Route patterns (for example /api/delsatellite/{id}) are resolved after the
handler runs, so PrometheusMetrics must sit inside the chi router rather than
wrapping it from outside.

Thread Safety:

All middleware is stateless apart from a sync.Pool of gzip writers and is safe
for concurrent use.
*/
package middleware
