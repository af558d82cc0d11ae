// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bpaksoy/capstone/internal/api"
	"github.com/bpaksoy/capstone/internal/auth"
	"github.com/bpaksoy/capstone/internal/config"
	"github.com/bpaksoy/capstone/internal/events"
	"github.com/bpaksoy/capstone/internal/importer"
	"github.com/bpaksoy/capstone/internal/logging"
	"github.com/bpaksoy/capstone/internal/supervisor"
	"github.com/bpaksoy/capstone/internal/supervisor/services"
)

func newServeCommand(c *cli) *cobra.Command {
	var seed string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API under a supervisor tree.

The catalog index is rebuilt on start, every catalog.refresh_interval, and
whenever an import announces new rows. With --seed (or import.path) the
file is imported once at startup. The process stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seed != "" {
				c.cfg.Import.Path = seed
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, c.cfg)
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "IPEDS CSV file to import at startup (default: import.path)")

	return cmd
}

// signalCatalog requests a catalog refresh without blocking.
func signalCatalog(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// authMiddleware builds the API authentication layer for the configured mode.
func authMiddleware(cfg *config.Config) (*auth.Middleware, error) {
	if cfg.Security.AuthMode == auth.AuthModeNone {
		return auth.NewMiddleware(nil, auth.AuthModeNone)
	}
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return nil, err
	}
	return auth.NewMiddleware(jwtManager, cfg.Security.AuthMode)
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.Logger()
	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting capstone")
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Strs("cors_origins", cfg.Security.CORSOrigins).Msg("Wildcard CORS with authentication enabled")
	}

	comp, err := openComponents(cfg, logger)
	if err != nil {
		return err
	}
	defer comp.Close()

	bus := events.NewBus(logger)
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	handler, err := api.NewHandler(api.Deps{
		Config:    cfg,
		Store:     comp.db,
		Catalog:   comp.breaker,
		Index:     comp.index,
		Engine:    comp.engine,
		Resolver:  comp.resolver,
		Publisher: bus,
	})
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}
	authMW, err := authMiddleware(cfg)
	if err != nil {
		return fmt.Errorf("create auth middleware: %w", err)
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           api.NewRouter(handler, authMW, cfg).SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	// Data layer
	catalogUpdates := make(chan struct{}, 1)
	tree.AddDataService(services.NewCatalogIndexService(comp.index, catalogUpdates, services.CatalogServiceConfig{
		RefreshOnStartup: true,
		RefreshInterval:  cfg.Catalog.RefreshInterval,
	}, logger))
	if cfg.Import.Path != "" {
		imp := importer.NewImporter(&cfg.Import, comp.db, bus, logger)
		tree.AddDataService(services.NewImportService(imp, cfg.Import.Path, func(*importer.Stats) {
			signalCatalog(catalogUpdates)
		}, logger))
	}

	// Events layer
	tree.AddEventService(services.NewConsumerService("catalog-updates", func(ctx context.Context) error {
		return events.Notify[events.CatalogUpdated](ctx, bus, events.TopicCatalogUpdated, catalogUpdates)
	}))
	tree.AddEventService(services.NewConsumerService("bookmark-metrics", func(ctx context.Context) error {
		return events.CountBookmarkEvents(ctx, bus)
	}))

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	errCh := tree.ServeBackground(ctx)
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	} else {
		treeErr = nil
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if treeErr != nil {
		return fmt.Errorf("supervisor tree: %w", treeErr)
	}
	logging.Info().Msg("capstone stopped gracefully")
	return nil
}
