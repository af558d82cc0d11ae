// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package middleware provides HTTP middleware components for the API router.

Every component has the chi middleware signature func(http.Handler) http.Handler
so it can be mounted with r.Use:

  - RequestID: UUID request tracking, propagated into the logging context
  - RequestLogger: one structured zerolog line per request
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PrometheusMetrics)

The metrics endpoint label is the matched chi route pattern when one is
available, so path parameters such as /colleges/{id} do not explode label
cardinality.
*/
package middleware
