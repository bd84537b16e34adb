// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/orbitdesk/internal/metrics"
)

func TestUptimeService(t *testing.T) {
	start := time.Now().Add(-time.Hour)
	svc := NewUptimeService(start, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v", err)
	}
	if got := testutil.ToFloat64(metrics.AppUptime); got < 3600 {
		t.Errorf("app_uptime_seconds = %v, want >= 3600", got)
	}
	if NewUptimeService(start, 0).interval != 15*time.Second {
		t.Error("zero interval did not default to 15s")
	}
}
