// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/bpaksoy/capstone/internal/recommend"
	"github.com/bpaksoy/capstone/internal/resolve"
)

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status            string     `json:"status"` // healthy, degraded
	DatabaseConnected bool       `json:"database_connected"`
	CatalogSize       int        `json:"catalog_size"`
	CatalogBuiltAt    *time.Time `json:"catalog_built_at,omitempty"`
	BreakerState      string     `json:"breaker_state"`
	Uptime            float64    `json:"uptime"`
}

// CacheStats reports resolve cache usage.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// CatalogStats reports the in-memory catalog and its breaker.
type CatalogStats struct {
	Size         int              `json:"size"`
	Generation   uint64           `json:"generation"`
	BuiltAt      *time.Time       `json:"built_at,omitempty"`
	BreakerState string           `json:"breaker_state"`
	Breaker      gobreaker.Counts `json:"breaker_counts"`
}

// ServiceStats is the payload of GET /api/v1/stats.
type ServiceStats struct {
	Recommend recommend.Stats `json:"recommend"`
	Resolve   resolve.Stats   `json:"resolve"`
	Cache     CacheStats      `json:"resolve_cache"`
	Catalog   CatalogStats    `json:"catalog"`
}

func (h *Handler) catalogBuiltAt() *time.Time {
	if h.index.Generation() == 0 {
		return nil
	}
	builtAt := h.index.BuiltAt()
	return &builtAt
}

// Health reports dependency status. It always answers 200; the status field
// is "degraded" when the database is unreachable or the catalog breaker is open.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.store.Ping(r.Context()) == nil
	breakerState := h.catalog.State()

	status := "healthy"
	if !dbConnected || breakerState == gobreaker.StateOpen {
		status = "degraded"
	}

	NewResponseWriter(w, r).Success(HealthStatus{
		Status:            status,
		DatabaseConnected: dbConnected,
		CatalogSize:       h.index.Size(),
		CatalogBuiltAt:    h.catalogBuiltAt(),
		BreakerState:      breakerState.String(),
		Uptime:            time.Since(h.startTime).Seconds(),
	})
}

// HealthLive answers 200 while the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 200 once the database is reachable and the catalog
// index has been populated at least once, else 503.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.store.Ping(r.Context()); err != nil {
		rw.ServiceUnavailable("database not ready")
		return
	}
	if h.index.Generation() == 0 {
		rw.ServiceUnavailable("catalog not loaded")
		return
	}

	rw.Success(map[string]interface{}{
		"ready":        true,
		"catalog_size": h.index.Size(),
	})
}

// Stats reports cumulative engine, resolver and cache counters.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	hits, misses, size := h.resolved.Stats()

	NewResponseWriter(w, r).Success(ServiceStats{
		Recommend: h.engine.Stats(),
		Resolve:   h.resolver.Stats(),
		Cache:     CacheStats{Hits: hits, Misses: misses, Size: size},
		Catalog: CatalogStats{
			Size:         h.index.Size(),
			Generation:   h.index.Generation(),
			BuiltAt:      h.catalogBuiltAt(),
			BreakerState: h.catalog.State().String(),
			Breaker:      h.catalog.Counts(),
		},
	})
}
