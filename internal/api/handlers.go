// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package api

import (
	"time"

	"github.com/tomtom215/orbitdesk/internal/config"
	"github.com/tomtom215/orbitdesk/internal/store"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_satellite.go: satellite CRUD endpoints
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	store     store.Gateway
	config    config.APIConfig
	startTime time.Time
}

// NewHandler creates a handler backed by gw. In production gw is a
// store.Guarded wrapping the badger store.
//
// Example:
//
//	handler := api.NewHandler(store.NewGuarded(badgerStore, cfg.Store), cfg.API)
func NewHandler(gw store.Gateway, cfg config.APIConfig) *Handler {
	return &Handler{
		store:     gw,
		config:    cfg,
		startTime: time.Now(),
	}
}
