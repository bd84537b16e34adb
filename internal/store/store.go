// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

// Package store is the storage gateway for satellite records.
//
// Records live in an embedded BadgerDB instance. Every gateway call is a
// single badger transaction, so each call is atomic on its own; there is no
// multi-call transaction support.
//
// Storage layout:
//
//	satellite:<_id>                  -> JSON document
//	satellite_id:<id>                -> _id   (unique index)
//	satellite_name:<name>\x00<_id>   -> _id   (name index, prefix scan)
//
// _id is a UUIDv7, so ascending key order is creation order.
package store

import (
	"context"

	"github.com/tomtom215/orbitdesk/internal/models"
)

// Gateway mediates all reads and writes to the satellite collection.
type Gateway interface {
	// ListAll returns every record in creation order. The slice is empty,
	// not nil, when the collection is empty.
	ListAll(ctx context.Context) ([]models.Satellite, error)

	// FindByName returns the first record whose name matches exactly.
	FindByName(ctx context.Context, name string) (*models.Satellite, error)

	// DeleteByID removes and returns the record with the given id.
	DeleteByID(ctx context.Context, id string) (*models.Satellite, error)

	// Create validates and stores a new record.
	Create(ctx context.Context, input *models.SatelliteInput) (*models.Satellite, error)

	// UpdateByID merges patch into the record with the given id and returns
	// the post-update record.
	UpdateByID(ctx context.Context, id string, patch models.SatellitePatch) (*models.Satellite, error)

	// Ping reports whether the store can serve reads.
	Ping(ctx context.Context) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

// Key prefixes for BadgerDB storage
const (
	satelliteKeyPrefix     = "satellite:"
	satelliteIDKeyPrefix   = "satellite_id:"
	satelliteNameKeyPrefix = "satellite_name:"
)

func docKey(internalID string) []byte {
	return []byte(satelliteKeyPrefix + internalID)
}

func idKey(id string) []byte {
	return []byte(satelliteIDKeyPrefix + id)
}

func namePrefix(name string) []byte {
	return []byte(satelliteNameKeyPrefix + name + "\x00")
}

func nameKey(name, internalID string) []byte {
	return []byte(satelliteNameKeyPrefix + name + "\x00" + internalID)
}
