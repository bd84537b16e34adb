// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

/*
Package models defines the satellite record and the request/response shapes
of the Orbitdesk API.

Key Components:

  - Satellite: the stored record, serialized with "_id" for the storage key
  - SatelliteInput: create body; required fields are pointers so a missing
    field differs from a zero value
  - SatellitePatch: partial update body, merged over the current record
    and re-validated as a whole
  - MessageResponse, ErrorResponse, AddResponse, UpdateResponse,
    DeleteResponse, HealthResponse: response envelopes

JSON encoding uses goccy/go-json. Field names are part of the wire contract
and must not change.
*/
package models
