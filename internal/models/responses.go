// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package models

// MessageResponse is the body of not-found and read/delete failure responses.
type MessageResponse struct {
	Message string `json:"message" example:"Satellite not found"`
}

// ErrorResponse is the body of add/update failures. Error carries the
// underlying validation or storage message.
type ErrorResponse struct {
	Message string `json:"message" example:"Failed to add satellite"`
	Error   string `json:"error" example:"name is required"`
}

// DeleteResponse is returned by a successful delete.
type DeleteResponse struct {
	Message          string    `json:"message" example:"Satellite deleted successfully"`
	DeletedSatellite Satellite `json:"deletedSatellite"`
}

// AddResponse is returned by a successful add.
type AddResponse struct {
	Message   string    `json:"message" example:"Satellite added successfully"`
	Satellite Satellite `json:"satellite"`
}

// UpdateResponse is returned by a successful update.
type UpdateResponse struct {
	Message          string    `json:"message" example:"Satellite updated successfully"`
	UpdatedSatellite Satellite `json:"updatedSatellite"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status     string `json:"status" example:"ready"`
	Satellites *int   `json:"satellites,omitempty" example:"3"`
	Error      string `json:"error,omitempty"`
}
