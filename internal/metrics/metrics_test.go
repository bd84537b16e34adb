// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func histogramCount(t *testing.T, obs prometheus.Observer) uint64 {
	t.Helper()
	m, ok := obs.(prometheus.Metric)
	if !ok {
		t.Fatal("observer is not a metric")
	}
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return out.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/test-record", "200")
	before := testutil.ToFloat64(counter)
	hist := APIRequestDuration.WithLabelValues("GET", "/api/test-record")
	histBefore := histogramCount(t, hist)

	RecordAPIRequest("GET", "/api/test-record", 200, 25*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", got)
	}
	if got := histogramCount(t, hist) - histBefore; got != 1 {
		t.Errorf("api_request_duration_seconds sample delta = %d, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("active delta after inc = %v, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active after dec = %v, want %v", got, before)
	}
}

func TestRecordStoreOperation(t *testing.T) {
	errs := StoreOperationErrors.WithLabelValues("test_op", "not_found")
	before := testutil.ToFloat64(errs)
	hist := StoreOperationDuration.WithLabelValues("test_op")
	histBefore := histogramCount(t, hist)

	RecordStoreOperation("test_op", "", time.Millisecond)
	RecordStoreOperation("test_op", "not_found", time.Millisecond)

	if got := testutil.ToFloat64(errs) - before; got != 1 {
		t.Errorf("store_operation_errors_total delta = %v, want 1", got)
	}
	if got := histogramCount(t, hist) - histBefore; got != 2 {
		t.Errorf("store_operation_duration_seconds sample delta = %d, want 2", got)
	}
}

func TestSetSatellitesStored(t *testing.T) {
	SetSatellitesStored(7)
	if got := testutil.ToFloat64(SatellitesStored); got != 7 {
		t.Errorf("satellites_stored = %v, want 7", got)
	}
}

func TestRecordValueLogGC(t *testing.T) {
	runs := StoreValueLogGCRuns.WithLabelValues("noop")
	before := testutil.ToFloat64(runs)

	RecordValueLogGC("noop", 2*time.Millisecond)

	if got := testutil.ToFloat64(runs) - before; got != 1 {
		t.Errorf("gc runs delta = %v, want 1", got)
	}
}

func TestBreakerMetrics(t *testing.T) {
	RecordBreakerState("test-breaker", 2, 5)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CircuitBreakerConsecutiveFailures.WithLabelValues("test-breaker")); got != 5 {
		t.Errorf("consecutive failures = %v, want 5", got)
	}

	transitions := CircuitBreakerTransitions.WithLabelValues("test-breaker", "closed", "open")
	before := testutil.ToFloat64(transitions)
	RecordBreakerTransition("test-breaker", "closed", "open")
	if got := testutil.ToFloat64(transitions) - before; got != 1 {
		t.Errorf("transitions delta = %v, want 1", got)
	}

	rejected := CircuitBreakerRequests.WithLabelValues("test-breaker", "rejected")
	before = testutil.ToFloat64(rejected)
	RecordBreakerRequest("test-breaker", "rejected")
	if got := testutil.ToFloat64(rejected) - before; got != 1 {
		t.Errorf("rejected delta = %v, want 1", got)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("test-version")
	if got := testutil.CollectAndCount(AppInfo); got < 1 {
		t.Errorf("app_info series = %d, want at least 1", got)
	}
}

func TestTrackUptime(t *testing.T) {
	stop := make(chan struct{})
	done := make(chan struct{})
	start := time.Now().Add(-time.Minute)

	go func() {
		TrackUptime(start, time.Hour, stop)
		close(done)
	}()
	close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("TrackUptime did not return after stop")
	}
	if got := testutil.ToFloat64(AppUptime); got < 60 {
		t.Errorf("app_uptime_seconds = %v, want >= 60", got)
	}
}
