// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package store

import (
	"errors"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("satellite not found")

	// ErrDuplicateID is returned (inside a ValidationError) when another
	// record already holds the id.
	ErrDuplicateID = errors.New("satellite id already exists")

	// ErrStoreUnavailable is returned when the store is closed or the circuit
	// breaker is open.
	ErrStoreUnavailable = errors.New("satellite store unavailable")
)

// ValidationError reports a record that failed validation: missing required
// fields, a duplicate id, or a malformed document.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return "validation failed"
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Kind classifies gateway errors for status mapping and metrics.
type Kind string

const (
	KindNone        Kind = ""
	KindNotFound    Kind = "not_found"
	KindValidation  Kind = "validation"
	KindUnavailable Kind = "unavailable"
)

// KindOf classifies err. Anything that is neither NotFound nor a
// ValidationError is a storage failure.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrNotFound) {
		return KindNotFound
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	return KindUnavailable
}
