// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package metrics provides Prometheus instrumentation for the capstone service.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP:
  - http_requests_total{method,endpoint,status}
  - http_request_duration_seconds{method,endpoint}
  - http_requests_in_flight

Database:
  - duckdb_query_duration_seconds{operation,table}
  - duckdb_query_errors_total{operation,table,error_type}

Recommendation and resolution:
  - recommend_requests_total{status}
  - recommend_candidates
  - resolve_requests_total{method}

Catalog:
  - catalog_index_size
  - catalog_refresh_total{result}
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_state_transitions_total{name,from,to}

Events:
  - events_published_total{topic}
  - bookmark_events_total{action}

# Recording Helpers

Callers use the Record* helpers rather than touching collectors directly:

	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "colleges", time.Since(start), err)
*/
package metrics
