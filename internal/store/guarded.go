// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package store

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/orbitdesk/internal/config"
	"github.com/tomtom215/orbitdesk/internal/logging"
	"github.com/tomtom215/orbitdesk/internal/metrics"
	"github.com/tomtom215/orbitdesk/internal/models"
)

// Ensure Guarded implements Gateway
var _ Gateway = (*Guarded)(nil)

// BreakerName labels the store circuit breaker in logs and metrics.
const BreakerName = "satellite-store"

// Guarded wraps a Gateway with a circuit breaker. Only storage failures
// count toward tripping; NotFound, ValidationError and caller cancellation
// are normal outcomes. While open, calls fail fast with ErrStoreUnavailable.
type Guarded struct {
	next Gateway
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// NewGuarded wraps next using the breaker settings in cfg.
func NewGuarded(next Gateway, cfg config.StoreConfig) *Guarded {
	name := BreakerName
	threshold := cfg.BreakerFailureThreshold

	metrics.RecordBreakerState(name, stateToFloat(gobreaker.StateClosed), 0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= threshold
			if trip {
				logging.Warn().
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening satellite store circuit")
			}
			return trip
		},

		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return true
			}
			return KindOf(err) != KindUnavailable
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("[CIRCUIT BREAKER] Satellite store state transition")

			metrics.RecordBreakerTransition(name, stateToString(from), stateToString(to))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &Guarded{next: next, cb: cb, name: name}
}

// State returns the current breaker state.
func (g *Guarded) State() gobreaker.State {
	return g.cb.State()
}

// execute runs fn through the breaker and records the outcome.
func (g *Guarded) execute(fn func() (any, error)) (any, error) {
	result, err := g.cb.Execute(fn)
	if err == nil {
		metrics.RecordBreakerRequest(g.name, "success")
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(g.name).Set(0)
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.RecordBreakerRequest(g.name, "rejected")
		logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Satellite store request rejected")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if KindOf(err) == KindUnavailable {
		metrics.RecordBreakerRequest(g.name, "failure")
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(g.name).Set(float64(g.cb.Counts().ConsecutiveFailures))
	} else {
		metrics.RecordBreakerRequest(g.name, "success")
	}
	return nil, err
}

// guard adapts a typed gateway call to the breaker's untyped signature.
func guard[T any](g *Guarded, fn func() (T, error)) (T, error) {
	var zero T
	result, err := g.execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// ListAll implements Gateway.
func (g *Guarded) ListAll(ctx context.Context) ([]models.Satellite, error) {
	return guard(g, func() ([]models.Satellite, error) { return g.next.ListAll(ctx) })
}

// FindByName implements Gateway.
func (g *Guarded) FindByName(ctx context.Context, name string) (*models.Satellite, error) {
	return guard(g, func() (*models.Satellite, error) { return g.next.FindByName(ctx, name) })
}

// DeleteByID implements Gateway.
func (g *Guarded) DeleteByID(ctx context.Context, id string) (*models.Satellite, error) {
	return guard(g, func() (*models.Satellite, error) { return g.next.DeleteByID(ctx, id) })
}

// Create implements Gateway.
func (g *Guarded) Create(ctx context.Context, input *models.SatelliteInput) (*models.Satellite, error) {
	return guard(g, func() (*models.Satellite, error) { return g.next.Create(ctx, input) })
}

// UpdateByID implements Gateway.
func (g *Guarded) UpdateByID(ctx context.Context, id string, patch models.SatellitePatch) (*models.Satellite, error) {
	return guard(g, func() (*models.Satellite, error) { return g.next.UpdateByID(ctx, id, patch) })
}

// Ping bypasses the breaker so readiness reflects the store itself, but
// reports unavailable while the breaker is open.
func (g *Guarded) Ping(ctx context.Context) error {
	if g.cb.State() == gobreaker.StateOpen {
		return fmt.Errorf("%w: circuit breaker open", ErrStoreUnavailable)
	}
	return g.next.Ping(ctx)
}

// Count implements Gateway.
func (g *Guarded) Count(ctx context.Context) (int, error) {
	return guard(g, func() (int, error) { return g.next.Count(ctx) })
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
