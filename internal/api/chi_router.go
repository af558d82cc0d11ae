// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bpaksoy/capstone/internal/auth"
	"github.com/bpaksoy/capstone/internal/config"
	"github.com/bpaksoy/capstone/internal/middleware"
)

// defaultHandlerTimeout bounds /api/v1 handlers when the server timeout is unset.
const defaultHandlerTimeout = 10 * time.Second

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
	timeout       time.Duration
}

// NewRouter creates a router. cfg supplies CORS, rate limit and timeout settings.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, cfg *config.Config) *Router {
	timeout := defaultHandlerTimeout
	var sec *config.SecurityConfig
	if cfg != nil {
		sec = &cfg.Security
		if cfg.Server.Timeout > 0 {
			timeout = cfg.Server.Timeout
		}
	}

	return &Router{
		handler:       handler,
		auth:          authMiddleware,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(sec)),
		timeout:       timeout,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).MethodNotAllowed()
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chimiddleware.Timeout(router.timeout))

		r.Route("/health", func(r chi.Router) {
			r.Get("/", router.handler.Health)
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		// Public catalog endpoints
		r.Get("/stats", router.handler.Stats)
		r.Get("/colleges/autocomplete", router.handler.Autocomplete)
		r.Get("/colleges/{id}", router.handler.GetCollege)
		r.Get("/resolve", router.handler.Resolve)
		r.Post("/resolve", router.handler.Resolve)
		r.Get("/suggest", router.handler.Suggest)
		r.Get("/likes/{kind}/{id}", router.handler.CountLikes)

		// Per-user endpoints
		r.Group(func(r chi.Router) {
			r.Use(router.auth.Authenticate)

			r.Get("/recommendations", router.handler.Recommendations)
			r.Get("/bookmarks", router.handler.ListBookmarks)
			r.Post("/bookmarks/{id}/toggle", router.handler.ToggleBookmark)
			r.Post("/likes", router.handler.AddLike)
			r.Delete("/likes/{kind}/{id}", router.handler.RemoveLike)
		})
	})

	return r
}
