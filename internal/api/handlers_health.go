// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package api

import (
	"net/http"

	"github.com/tomtom215/orbitdesk/internal/logging"
	"github.com/tomtom215/orbitdesk/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Description Returns 200 OK while the process is serving HTTP, regardless of store state.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the store can serve reads
//
// @Summary Readiness probe
// @Description Returns 200 with the stored record count when the satellite store is reachable, 503 otherwise (including while the store circuit breaker is open).
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is ready"
// @Failure 503 {object} models.HealthResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		respondJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status: "not_ready",
			Error:  "satellite store unavailable",
		})
		return
	}

	count, err := h.store.Count(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness count failed")
		respondJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status: "not_ready",
			Error:  "satellite store unavailable",
		})
		return
	}

	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status:     "ready",
		Satellites: &count,
	})
}
