// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package cache provides the in-memory lookup structures behind catalog search.

# Structures

  - AhoCorasick: multi-pattern substring matcher. The resolver compiles the
    phrase terms of a query once and scans every candidate name in a single
    pass per name.
  - Trie: prefix tree keyed by lowercased college name, used for
    autocomplete. Each catalog snapshot owns its own trie.
  - LRU: generic least-recently-used map with TTL, used to memoize resolver
    results per catalog generation.

# Thread Safety

All types are safe for concurrent use. AhoCorasick and Trie are built once
and then only read; they still take a read lock so a late AddPattern or
Insert never races a search.

# Usage Example

	ac := cache.NewAhoCorasick()
	ac.AddPattern("massachusetts institute of technology", 0)
	ac.Build()

	if ac.Contains("Massachusetts Institute of Technology") {
	    // phrase term satisfied
	}
*/
package cache
