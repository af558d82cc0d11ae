// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package database provides the DuckDB-backed store for the college catalog,
user bookmarks and likes.

# Schema

	colleges   catalog rows; nullable numeric features
	bookmarks  (user_id, college_id) pairs
	likes      one row per (user, target kind, target id)

Indexes cover colleges.state and colleges.name.

# Read Path

FetchCandidates and SearchNames are shaped to satisfy the function types the
recommend and resolve packages accept, so a *DB method value can be passed
directly:

	engine.Recommend(ctx, bookmarks, nil, db.FetchCandidates)
	resolver.ResolveMentions(ctx, text, db.SearchNames)

Both are coarse: the caller re-applies its own filtering and never trusts
the store to have done it.

# Timeouts

Every operation without a caller deadline runs under a 30 second default.
Each query is timed through metrics.RecordDBQuery.
*/
package database
