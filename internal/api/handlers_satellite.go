// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package api

import (
	"net/http"

	"github.com/tomtom215/orbitdesk/internal/logging"
	"github.com/tomtom215/orbitdesk/internal/models"
	"github.com/tomtom215/orbitdesk/internal/store"
)

// ListSatellites returns every stored satellite.
//
// @Summary List all satellites
// @Description Returns every satellite in creation order. An empty collection returns 404 unless api.empty_list_not_found is disabled, in which case it returns an empty array.
// @Tags Satellites
// @Produce json
// @Success 200 {array} models.Satellite "All satellites"
// @Failure 404 {object} models.MessageResponse "No satellites found"
// @Failure 500 {object} models.MessageResponse "Failed to fetch satellites"
// @Router /allsatellite [get]
func (h *Handler) ListSatellites(w http.ResponseWriter, r *http.Request) {
	sats, err := h.store.ListAll(r.Context())
	if err != nil {
		status, kind := statusFor(err)
		logging.Ctx(r.Context()).Error().Err(err).Str("kind", string(kind)).Msg("Failed to fetch satellites")
		respondMessage(w, status, msgFetchAllFailed)
		return
	}

	if len(sats) == 0 && h.config.EmptyListNotFound {
		respondMessage(w, http.StatusNotFound, msgNoSatellites)
		return
	}

	respondJSON(w, http.StatusOK, sats)
}

// GetSatelliteByName returns the first satellite whose name matches exactly.
//
// @Summary Get a satellite by name
// @Description Returns the first satellite (in creation order) whose name equals the query parameter. Matching is exact and case-sensitive.
// @Tags Satellites
// @Produce json
// @Param name query string true "Satellite name" example("Alpha")
// @Success 200 {object} models.Satellite "Matching satellite"
// @Failure 404 {object} models.MessageResponse "Satellite not found"
// @Failure 500 {object} models.MessageResponse "Failed to fetch satellite"
// @Router /satellite [get]
func (h *Handler) GetSatelliteByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	sat, err := h.store.FindByName(r.Context(), name)
	if err != nil {
		status, kind := statusFor(err)
		if status == http.StatusNotFound {
			respondMessage(w, status, msgNotFound)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Str("kind", string(kind)).Str("name", name).Msg("Failed to fetch satellite")
		respondMessage(w, status, msgFetchOneFailed)
		return
	}

	respondJSON(w, http.StatusOK, sat)
}

// DeleteSatellite removes a satellite by its business id.
//
// @Summary Delete a satellite
// @Description Deletes the satellite with the given business id and returns the removed record.
// @Tags Satellites
// @Produce json
// @Param id path string true "Satellite id" example("S1")
// @Success 200 {object} models.DeleteResponse "Satellite deleted successfully"
// @Failure 404 {object} models.MessageResponse "Satellite not found"
// @Failure 500 {object} models.MessageResponse "Failed to delete satellite"
// @Router /delsatellite/{id} [delete]
func (h *Handler) DeleteSatellite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	var sat *models.Satellite
	if err == nil {
		sat, err = h.store.DeleteByID(r.Context(), id)
	}
	if err != nil {
		status, kind := statusFor(err)
		if status == http.StatusNotFound {
			respondMessage(w, status, msgNotFound)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Str("kind", string(kind)).Str("satellite_id", id).Msg("Failed to delete satellite")
		respondMessage(w, status, msgDeleteFailed)
		return
	}

	logging.Ctx(r.Context()).Info().Str("satellite_id", sat.ID).Str("name", sat.Name).Msg("Satellite deleted")
	respondJSON(w, http.StatusOK, models.DeleteResponse{
		Message:          msgDeleted,
		DeletedSatellite: *sat,
	})
}

// AddSatellite creates a satellite from a full record.
//
// @Summary Add a satellite
// @Description Creates a satellite. All fields except altitude, latitude and longitude are required, and id must be unique. Validation failures return 500 with the reason in the error field.
// @Tags Satellites
// @Accept json
// @Produce json
// @Param satellite body models.SatelliteInput true "Satellite record"
// @Success 201 {object} models.AddResponse "Satellite added successfully"
// @Failure 500 {object} models.ErrorResponse "Failed to add satellite"
// @Router /addsatellite [post]
func (h *Handler) AddSatellite(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r, h.config.MaxBodyBytes)
	if err != nil {
		h.addFailed(w, r, err)
		return
	}

	var input models.SatelliteInput
	if err := decodeJSON(body, &input); err != nil {
		h.addFailed(w, r, err)
		return
	}

	sat, err := h.store.Create(r.Context(), &input)
	if err != nil {
		h.addFailed(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("satellite_id", sat.ID).Str("name", sat.Name).Msg("Satellite added")
	respondJSON(w, http.StatusCreated, models.AddResponse{
		Message:   msgAdded,
		Satellite: *sat,
	})
}

func (h *Handler) addFailed(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := statusFor(err)
	logEvent := logging.Ctx(r.Context()).Warn()
	if kind == store.KindUnavailable {
		logEvent = logging.Ctx(r.Context()).Error()
	}
	logEvent.Err(err).Str("kind", string(kind)).Msg("Failed to add satellite")
	respondFailure(w, status, msgAddFailed, err)
}

// UpdateSatellite applies a partial update to a satellite by its business id.
//
// @Summary Update a satellite
// @Description Merges the supplied fields into the satellite with the given id. Absent fields are unchanged, null clears optional fields, unknown fields are ignored. Returns the updated record.
// @Tags Satellites
// @Accept json
// @Produce json
// @Param id path string true "Satellite id" example("S1")
// @Param patch body object true "Fields to update" example({"speed": 8.0})
// @Success 200 {object} models.UpdateResponse "Satellite updated successfully"
// @Failure 404 {object} models.MessageResponse "Satellite not found"
// @Failure 500 {object} models.ErrorResponse "Failed to update satellite"
// @Router /updatesatellite/{id} [put]
func (h *Handler) UpdateSatellite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.updateFailed(w, r, id, err)
		return
	}

	body, err := readBody(w, r, h.config.MaxBodyBytes)
	if err != nil {
		h.updateFailed(w, r, id, err)
		return
	}

	patch, err := models.ParsePatch(body)
	if err != nil {
		h.updateFailed(w, r, id, &store.ValidationError{Err: err})
		return
	}

	sat, err := h.store.UpdateByID(r.Context(), id, patch)
	if err != nil {
		h.updateFailed(w, r, id, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("satellite_id", sat.ID).Str("name", sat.Name).Msg("Satellite updated")
	respondJSON(w, http.StatusOK, models.UpdateResponse{
		Message:          msgUpdated,
		UpdatedSatellite: *sat,
	})
}

func (h *Handler) updateFailed(w http.ResponseWriter, r *http.Request, id string, err error) {
	status, kind := statusFor(err)
	if status == http.StatusNotFound {
		respondMessage(w, status, msgNotFound)
		return
	}
	logEvent := logging.Ctx(r.Context()).Warn()
	if kind == store.KindUnavailable {
		logEvent = logging.Ctx(r.Context()).Error()
	}
	logEvent.Err(err).Str("kind", string(kind)).Str("satellite_id", id).Msg("Failed to update satellite")
	respondFailure(w, status, msgUpdateFailed, err)
}
