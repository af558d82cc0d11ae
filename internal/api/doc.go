// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package api provides the HTTP surface of the capstone service: college
recommendations, mention resolution, autocomplete, bookmarks and likes.

# Routing

Routes are served by a chi router (see SetupChi). Every route gets request
IDs, structured request logging, panic recovery, CORS and Prometheus
instrumentation. Routes under /api/v1 are rate limited per client IP via
httprate and time-limited by the server timeout.

	GET    /api/v1/health                     liveness and dependency status
	GET    /api/v1/health/live                process liveness
	GET    /api/v1/health/ready               readiness (database + catalog)
	GET    /api/v1/stats                      engine, resolver and cache counters
	GET    /api/v1/recommendations            top-K colleges for the caller
	GET    /api/v1/colleges/autocomplete      name prefix lookup
	GET    /api/v1/colleges/{id}              single college
	GET    /api/v1/resolve?text=              resolve mentions (also POST)
	GET    /api/v1/suggest?q=                 closest fuzzy name
	GET    /api/v1/bookmarks                  caller's bookmarks
	POST   /api/v1/bookmarks/{id}/toggle      add or remove a bookmark
	POST   /api/v1/likes                      like a target
	DELETE /api/v1/likes/{kind}/{id}          unlike a target
	GET    /api/v1/likes/{kind}/{id}          like count for a target
	GET    /metrics                           Prometheus exposition

Recommendation, bookmark and like routes require authentication.

# Responses

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}}
*/
package api
