// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/orbitdesk/internal/store"
)

// Response messages. Clients match on these strings.
const (
	msgNoSatellites    = "No satellites found"
	msgNotFound        = "Satellite not found"
	msgFetchAllFailed  = "Failed to fetch satellites"
	msgFetchOneFailed  = "Failed to fetch satellite"
	msgDeleted         = "Satellite deleted successfully"
	msgDeleteFailed    = "Failed to delete satellite"
	msgAdded           = "Satellite added successfully"
	msgAddFailed       = "Failed to add satellite"
	msgUpdated         = "Satellite updated successfully"
	msgUpdateFailed    = "Failed to update satellite"
	msgTooManyRequests = "Too many requests"
	msgInternalError   = "Internal server error"
)

// ErrEmptyBody is returned when add or update receives no body.
var ErrEmptyBody = errors.New("request body is empty")

// statusFor maps a gateway error to its HTTP status and kind.
// Validation failures map to 500 to match the established client contract.
func statusFor(err error) (int, store.Kind) {
	kind := store.KindOf(err)
	switch kind {
	case store.KindNone:
		return http.StatusOK, kind
	case store.KindNotFound:
		return http.StatusNotFound, kind
	default:
		return http.StatusInternalServerError, kind
	}
}

// readBody reads the request body up to limit bytes. Read failures, including
// an oversized body, are validation failures.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &store.ValidationError{Err: fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)}
		}
		return nil, &store.ValidationError{Err: fmt.Errorf("read request body: %w", err)}
	}
	if len(body) == 0 {
		return nil, &store.ValidationError{Err: ErrEmptyBody}
	}
	return body, nil
}

// decodeJSON unmarshals body into v, reporting malformed JSON as a
// validation failure.
func decodeJSON(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &store.ValidationError{Err: fmt.Errorf("invalid JSON body: %w", err)}
	}
	return nil
}

// pathID returns the decoded {id} path parameter. chi routes on RawPath when
// the request carries escapes such as %2F, leaving the parameter encoded.
func pathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id, nil
	}
	decoded, err := url.PathUnescape(id)
	if err != nil {
		return id, &store.ValidationError{Err: fmt.Errorf("invalid id %q: %w", id, err)}
	}
	return decoded, nil
}
