// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/orbitdesk/internal/logging"
	"github.com/tomtom215/orbitdesk/internal/models"
)

// SeedResult summarizes a seeding pass.
type SeedResult struct {
	Created int
	Skipped int
}

// SeedFromFile creates every satellite in the JSON array at path. Records
// whose id already exists are skipped, so seeding is idempotent across
// restarts. Any other failure aborts the pass.
func SeedFromFile(ctx context.Context, gw Gateway, path string) (SeedResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedResult{}, fmt.Errorf("read seed file: %w", err)
	}

	var inputs []models.SatelliteInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return SeedResult{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return Seed(ctx, gw, inputs)
}

// Seed creates each input through the gateway, skipping duplicate ids.
func Seed(ctx context.Context, gw Gateway, inputs []models.SatelliteInput) (SeedResult, error) {
	var res SeedResult
	for i := range inputs {
		sat, err := gw.Create(ctx, &inputs[i])
		if errors.Is(err, ErrDuplicateID) {
			res.Skipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("seed record %d: %w", i, err)
		}
		res.Created++
		logging.Debug().Str("satellite_id", sat.ID).Str("name", sat.Name).Msg("Seeded satellite")
	}

	logging.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("Satellite seeding complete")
	return res, nil
}
