// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package events provides the in-process event bus.

The bus is a Watermill GoChannel pub/sub. Payloads are JSON encoded with
goccy/go-json and every message carries a UUID and an event_type metadata
entry.

Topics:

	catalog.updated     CatalogUpdated, published after an import or upsert
	bookmarks.changed   BookmarkChanged, published on every toggle

Messages are not persisted. A subscriber only sees messages published after
it subscribed.

Consume runs a typed handler loop over one topic until the context ends:

	go events.Consume(ctx, bus, events.TopicCatalogUpdated,
		func(ctx context.Context, e events.CatalogUpdated) error {
			_, err := index.Refresh(ctx)
			return err
		})
*/
package events
