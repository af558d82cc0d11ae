// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// CatalogRefresher rebuilds the college index. Satisfied by *catalog.Index.
type CatalogRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// CatalogServiceConfig holds configuration for the catalog index service.
type CatalogServiceConfig struct {
	// RefreshOnStartup builds the index as soon as the service starts.
	RefreshOnStartup bool

	// RefreshInterval is the periodic rebuild interval.
	// Default: 15m
	RefreshInterval time.Duration

	// MinEventGap is the minimum time between event-triggered rebuilds.
	// Default: 5s
	MinEventGap time.Duration
}

// CatalogIndexService keeps the college index fresh.
type CatalogIndexService struct {
	index   CatalogRefresher
	updates <-chan struct{}
	config  CatalogServiceConfig
	logger  zerolog.Logger
	name    string
}

// NewCatalogIndexService creates the service. updates may be nil; otherwise
// each receive schedules a rebuild, throttled to one per MinEventGap.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogIndexService(index CatalogRefresher, updates <-chan struct{}, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogIndexService {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 15 * time.Minute
	}
	if cfg.MinEventGap <= 0 {
		cfg.MinEventGap = 5 * time.Second
	}
	return &CatalogIndexService{
		index:   index,
		updates: updates,
		config:  cfg,
		logger:  logger.With().Str("service", "catalog-index").Logger(),
		name:    "catalog-index-service",
	}
}

// Serve implements suture.Service.
func (s *CatalogIndexService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("refresh_on_startup", s.config.RefreshOnStartup).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("catalog index service starting")

	if s.config.RefreshOnStartup {
		s.refresh(ctx, "startup")
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	limiter := rate.NewLimiter(rate.Every(s.config.MinEventGap), 1)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog index service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.refresh(ctx, "schedule")

		case _, ok := <-s.updates:
			if !ok {
				s.updates = nil
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			s.refresh(ctx, "event")
		}
	}
}

// refresh rebuilds the index. The index logs outcomes and keeps its
// previous snapshot on failure.
func (s *CatalogIndexService) refresh(ctx context.Context, trigger string) {
	n, err := s.index.Refresh(ctx)
	s.logger.Debug().Err(err).Str("trigger", trigger).Int("colleges", n).Msg("catalog refresh attempted")
}

// String returns the service name for logging.
func (s *CatalogIndexService) String() string {
	return s.name
}
