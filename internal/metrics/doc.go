// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

/*
Package metrics provides Prometheus metrics collection for Orbitdesk.

Metrics are registered on the default registry through promauto and exposed
at /metrics in Prometheus text format:

	curl http://localhost:3000/metrics

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Store:
  - store_operation_duration_seconds{operation}
  - store_operation_errors_total{operation,kind}
  - satellites_stored
  - store_value_log_gc_runs_total{result}
  - store_value_log_gc_duration_seconds

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Application:
  - app_info{version,go_version}
  - app_uptime_seconds

Endpoint labels use chi route patterns (/api/delsatellite/{id}) so that
cardinality stays bounded regardless of the ids clients send.
*/
package metrics
