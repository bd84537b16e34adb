// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/orbitdesk/internal/logging"
)

// ValueLogCollector is satisfied by *store.BadgerStore.
type ValueLogCollector interface {
	RunValueLogGC(ctx context.Context, discardRatio float64) (int, error)
}

// ValueLogGCService periodically reclaims badger value-log space.
//
// A failed pass is returned to the supervisor, which restarts the service
// with backoff. The interval restarts from zero after a restart.
type ValueLogGCService struct {
	collector    ValueLogCollector
	interval     time.Duration
	discardRatio float64
	name         string
}

// NewValueLogGCService creates a GC service running every interval.
func NewValueLogGCService(collector ValueLogCollector, interval time.Duration, discardRatio float64) *ValueLogGCService {
	return &ValueLogGCService{
		collector:    collector,
		interval:     interval,
		discardRatio: discardRatio,
		name:         "value-log-gc",
	}
}

// Serve implements suture.Service.
func (s *ValueLogGCService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log := logging.WithComponent(s.name)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rewrites, err := s.collector.RunValueLogGC(ctx, s.discardRatio)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("value log gc: %w", err)
			}
			if rewrites > 0 {
				log.Info().Int("rewrites", rewrites).Msg("Value log GC reclaimed space")
			} else {
				log.Debug().Msg("Value log GC found nothing to reclaim")
			}
		}
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *ValueLogGCService) String() string {
	return s.name
}
