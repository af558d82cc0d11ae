// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bpaksoy/capstone/internal/catalog"
	"github.com/bpaksoy/capstone/internal/config"
	"github.com/bpaksoy/capstone/internal/database"
	"github.com/bpaksoy/capstone/internal/logging"
	"github.com/bpaksoy/capstone/internal/recommend"
	"github.com/bpaksoy/capstone/internal/resolve"
)

// components are the domain objects shared by serve and the one-shot
// commands.
type components struct {
	db       *database.DB
	breaker  *catalog.BreakerStore
	index    *catalog.Index
	engine   *recommend.Engine
	resolver *resolve.Resolver
}

// openComponents opens the database and builds the catalog, engine and
// resolver. The index is empty until refreshed.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func openComponents(cfg *config.Config, logger zerolog.Logger) (*components, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	breaker := catalog.NewBreakerStore(db, &cfg.Catalog)
	index := catalog.NewIndex(breaker.ListColleges, logger)

	engine, err := recommend.NewEngine(cfg.RecommendConfig(), logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	resolver, err := resolve.NewResolver(cfg.ResolveConfig(), index, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create resolver: %w", err)
	}

	return &components{
		db:       db,
		breaker:  breaker,
		index:    index,
		engine:   engine,
		resolver: resolver,
	}, nil
}

// loadIndex fills the index once for commands that do not run the
// refresh service.
func (c *components) loadIndex(ctx context.Context) error {
	if _, err := c.index.Refresh(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	return nil
}

func (c *components) Close() {
	if err := c.db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}
