// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/orbitdesk/internal/metrics"
)

// RunValueLogGC rewrites value-log files until badger reports nothing left to
// reclaim or ctx is done. It returns the number of files rewritten. In-memory
// stores have no value log and return immediately.
func (s *BadgerStore) RunValueLogGC(ctx context.Context, discardRatio float64) (int, error) {
	release, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	rewritten := 0
	for ctx.Err() == nil {
		start := time.Now()
		err := s.db.RunValueLogGC(discardRatio)
		switch {
		case err == nil:
			rewritten++
			metrics.RecordValueLogGC("rewritten", time.Since(start))
		case errors.Is(err, badger.ErrGCInMemoryMode):
			return rewritten, nil
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrRejected):
			metrics.RecordValueLogGC("noop", time.Since(start))
			return rewritten, nil
		default:
			metrics.RecordValueLogGC("error", time.Since(start))
			return rewritten, fmt.Errorf("run value log GC: %w", err)
		}
	}
	return rewritten, ctx.Err()
}
