// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package catalog provides the read side of the college catalog: a circuit
breaker around the store and an in-memory name index.

# BreakerStore

BreakerStore wraps the store read path in a sony/gobreaker circuit breaker.
The breaker opens once at least BreakerMinRequests calls have been seen in
the current interval and the failure ratio reaches BreakerFailureRatio.
While open, calls fail fast with gobreaker.ErrOpenState. A caller
cancelling its own context is not counted against the store.

# Index

Index holds an immutable snapshot of the catalog: the colleges ordered by
id, an id map and a folded-name trie for autocomplete. Refresh builds a new
snapshot off to the side and publishes it with a single atomic swap, so
readers see either the old catalog or the new one and never a mix.
Concurrent refreshes collapse into one load through singleflight.

Index satisfies resolve.NameSource.
*/
package catalog
