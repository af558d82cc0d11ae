// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package supervisor runs the long-lived parts of the capstone service under a
suture v4 supervisor tree.

The tree has three layers, each its own supervisor so a crash-looping
service in one layer backs off without disturbing the others:

	capstone (root)
	├── data-layer      catalog index refresh, seed import
	├── events-layer    event bus consumers
	└── api-layer       HTTP server

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog into the zerolog-backed slog handler from the logging package.

Example:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewCatalogIndexService(index, updates, services.CatalogServiceConfig{RefreshOnStartup: true}, logger))
	tree.AddEventService(services.NewConsumerService("bookmark-metrics", func(ctx context.Context) error {
	    return events.CountBookmarkEvents(ctx, bus)
	}))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
