// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

/*
Package main is the entry point for the Orbitdesk server.

Orbitdesk stores satellite records (identity, orbit classification, speed,
optional position, timestamps, visibility, free-text details) in an embedded
BadgerDB and exposes them over a small JSON HTTP API.

# Application Architecture

	RootSupervisor ("orbitdesk")
	├── DataSupervisor ("data-layer")
	│   ├── Value-log GC (store.gc_interval)
	│   └── Uptime gauge
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Startup order:

 1. Configuration: Koanf v2 (defaults, optional YAML, environment)
 2. Logging: zerolog, JSON or console
 3. Store: BadgerDB; the process exits before listening if it cannot open
 4. Seeding: optional STORE_SEED_FILE, duplicates skipped
 5. Circuit breaker: gobreaker around the store gateway
 6. Supervisor tree: suture v4 with the HTTP server and maintenance services

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to HTTP_SHUTDOWN_TIMEOUT, the supervisor tree stops, and the
store is closed last.

# Example Usage

Development with an in-memory store and demo data:

	STORE_IN_MEMORY=true STORE_SEED_FILE=./testdata/satellites.json LOG_FORMAT=console ./orbitdesk

Production:

	STORE_PATH=/var/lib/orbitdesk CORS_ORIGINS=https://ops.example.com ./orbitdesk
*/
package main
