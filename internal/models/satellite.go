// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Satellite is the stored satellite record.
//
// InternalID is the storage key assigned at creation. It is returned to
// callers as "_id" but records are always addressed by ID.
//
// Optional coordinates are pointers so an absent value serializes as null.
//
// Example:
//
//	{
//	  "_id": "0192f3c1-7a9b-7c3e-8a51-2f0d6c1e4b7a",
//	  "id": "S1",
//	  "name": "Alpha",
//	  "orbitType": "LEO",
//	  "speed": 7.6,
//	  "altitude": 408,
//	  "latitude": null,
//	  "longitude": null,
//	  "lastUpdated": "2024-01-01T00:00:00Z",
//	  "addedAt": "2024-01-01T00:00:00Z",
//	  "visibility": true,
//	  "details": "Station"
//	}
type Satellite struct {
	InternalID  string    `json:"_id"`
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	OrbitType   string    `json:"orbitType" validate:"required"`
	Speed       float64   `json:"speed"`
	Altitude    *float64  `json:"altitude"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	LastUpdated time.Time `json:"lastUpdated" validate:"required"`
	AddedAt     time.Time `json:"addedAt" validate:"required"`
	Visibility  bool      `json:"visibility"`
	Details     string    `json:"details" validate:"required"`
}

// SatelliteInput is the request shape for creating a satellite and the
// intermediate shape of a merged update.
//
// Required fields are pointers so a missing field is distinguishable from a
// present zero value (speed 0, visibility false).
type SatelliteInput struct {
	ID          *string    `json:"id" validate:"required,min=1"`
	Name        *string    `json:"name" validate:"required,min=1"`
	OrbitType   *string    `json:"orbitType" validate:"required,min=1"`
	Speed       *float64   `json:"speed" validate:"required"`
	Altitude    *float64   `json:"altitude"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	LastUpdated *time.Time `json:"lastUpdated" validate:"required"`
	AddedAt     *time.Time `json:"addedAt" validate:"required"`
	Visibility  *bool      `json:"visibility" validate:"required"`
	Details     *string    `json:"details" validate:"required,min=1"`
}

// ToSatellite converts a validated input into a record carrying internalID.
// Callers must validate first; nil required fields become zero values.
// Timestamps are stored in UTC.
func (in *SatelliteInput) ToSatellite(internalID string) Satellite {
	s := Satellite{
		InternalID: internalID,
		Altitude:   in.Altitude,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}
	if in.ID != nil {
		s.ID = *in.ID
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.OrbitType != nil {
		s.OrbitType = *in.OrbitType
	}
	if in.Speed != nil {
		s.Speed = *in.Speed
	}
	if in.LastUpdated != nil {
		s.LastUpdated = in.LastUpdated.UTC()
	}
	if in.AddedAt != nil {
		s.AddedAt = in.AddedAt.UTC()
	}
	if in.Visibility != nil {
		s.Visibility = *in.Visibility
	}
	if in.Details != nil {
		s.Details = *in.Details
	}
	return s
}

// InputFrom returns the input form of an existing record.
func InputFrom(s *Satellite) SatelliteInput {
	id, name, orbit, details := s.ID, s.Name, s.OrbitType, s.Details
	speed, visibility := s.Speed, s.Visibility
	lastUpdated, addedAt := s.LastUpdated, s.AddedAt
	return SatelliteInput{
		ID:          &id,
		Name:        &name,
		OrbitType:   &orbit,
		Speed:       &speed,
		Altitude:    s.Altitude,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		LastUpdated: &lastUpdated,
		AddedAt:     &addedAt,
		Visibility:  &visibility,
		Details:     &details,
	}
}

// satelliteFields are the patchable JSON keys. "_id" is never patchable.
var satelliteFields = []string{
	"id", "name", "orbitType", "speed", "altitude", "latitude", "longitude",
	"lastUpdated", "addedAt", "visibility", "details",
}

// SatellitePatch is a partial update keyed by JSON field name. A key that is
// present with a null value clears the field; absent keys are left alone;
// unknown keys are ignored.
type SatellitePatch map[string]json.RawMessage

// ParsePatch decodes a JSON object into a patch.
func ParsePatch(data []byte) (SatellitePatch, error) {
	var patch SatellitePatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	if patch == nil {
		return nil, fmt.Errorf("decode patch: body must be a JSON object")
	}
	return patch, nil
}

// Merge overlays the patch on current and returns the merged input for
// validation. Type mismatches (e.g. "speed":"fast") are reported as errors.
func (p SatellitePatch) Merge(current *Satellite) (SatelliteInput, error) {
	currentInput := InputFrom(current)
	base, err := json.Marshal(&currentInput)
	if err != nil {
		return SatelliteInput{}, fmt.Errorf("encode current record: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &doc); err != nil {
		return SatelliteInput{}, fmt.Errorf("decode current record: %w", err)
	}

	for _, field := range satelliteFields {
		if raw, ok := p[field]; ok {
			doc[field] = raw
		}
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return SatelliteInput{}, fmt.Errorf("encode merged record: %w", err)
	}
	var in SatelliteInput
	if err := json.Unmarshal(merged, &in); err != nil {
		return SatelliteInput{}, fmt.Errorf("decode merged record: %w", err)
	}
	return in, nil
}
