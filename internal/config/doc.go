// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

/*
Package config provides centralized configuration management for Orbitdesk.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, config.yaml, config.yml, /etc/orbitdesk/config.yaml
 3. Environment variables, mapped explicitly to config paths

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

Store (StoreConfig):
  - STORE_PATH: Badger directory (default: /data/orbitdesk)
  - STORE_IN_MEMORY: Run badger without touching disk (default: false)
  - STORE_SYNC_WRITES: fsync every write (default: true)
  - STORE_GC_INTERVAL, STORE_GC_DISCARD_RATIO: value-log garbage collection
  - STORE_BREAKER_MAX_REQUESTS, STORE_BREAKER_INTERVAL, STORE_BREAKER_TIMEOUT,
    STORE_BREAKER_FAILURE_THRESHOLD: circuit breaker tuning
  - STORE_SEED_FILE: JSON array of satellites loaded at startup

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: http://localhost:5173)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

API (APIConfig):
  - EMPTY_LIST_NOT_FOUND: Answer 404 when the collection is empty (default: true)
  - MAX_BODY_BYTES: Request body cap for add/update (default: 1MB)

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Config is immutable after Load and safe for concurrent reads.
*/
package config
