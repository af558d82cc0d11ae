// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package recommend ranks catalog colleges against a taste profile derived
from a user's bookmarks.

# Pipeline

	bookmarks ──► BuildProfile ──► fetch(states, exclude) ──► FilterCandidates
	                                                              │
	                    Rank(top K) ◄── Scorer.Score (distance) ◄─┘

  - BuildProfile averages the non-nil admission rate, SAT and cost of the
    bookmarks and collects their distinct states. An empty bookmark list
    yields ErrNoProfileAvailable, which Engine reports as a status rather
    than an error.
  - FilterCandidates keeps same-state, non-excluded records, orders them by
    ascending id and truncates at Limits.MaxCandidates. Truncation is a
    deterministic prefix; colleges past the cap are never scored.
  - Scorer computes a weighted L1 distance over normalized feature
    differences. Missing candidate features take the configured defaults.
  - Rank sorts ascending by distance, keeping input order on ties, and
    returns the first K.

The weights, normalization constants and defaults are a heuristic and live
in Config so they can be recalibrated without code changes.

# Concurrency

Engine holds only configuration and atomic counters. Profiles, candidate
lists and scores are allocated per call, so concurrent Recommend calls do
not share mutable state. The only blocking step is the injected fetcher,
which runs under Limits.FetchTimeout.
*/
package recommend
