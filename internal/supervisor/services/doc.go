// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package services provides suture.Service wrappers for the long-running parts
of the capstone server.

  - HTTPServerService runs an *http.Server and shuts it down gracefully when
    the supervisor context ends.
  - CatalogIndexService keeps the in-memory college index fresh: once on
    start, on a fixed interval, and whenever a catalog.updated event arrives.
  - ConsumerService adapts any blocking func(ctx) error, such as an event
    bus consumer, to the suture.Service interface.

Every service returns ctx.Err() on shutdown so suture does not restart it.
*/
package services
