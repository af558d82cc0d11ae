// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package database

import (
	"context"
	"fmt"
	"time"
)

const schemaTimeout = 60 * time.Second

// schemaContext returns a context with a timeout for DDL statements.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), schemaTimeout)
}

// createTables creates the catalog, bookmark and like tables.
// Every statement is idempotent.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS colleges (
			id BIGINT PRIMARY KEY,
			name VARCHAR NOT NULL,
			city VARCHAR NOT NULL DEFAULT '',
			state VARCHAR NOT NULL DEFAULT '',
			website VARCHAR NOT NULL DEFAULT '',
			admission_rate DOUBLE,
			sat_score INTEGER,
			cost_of_attendance INTEGER,
			tuition_in_state INTEGER,
			tuition_out_state INTEGER,
			enrollment INTEGER,
			latitude DOUBLE,
			longitude DOUBLE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_colleges_state ON colleges(state)`,
		`CREATE INDEX IF NOT EXISTS idx_colleges_name ON colleges(name)`,

		`CREATE TABLE IF NOT EXISTS bookmarks (
			user_id BIGINT NOT NULL,
			college_id BIGINT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			PRIMARY KEY (user_id, college_id)
		)`,

		`CREATE SEQUENCE IF NOT EXISTS likes_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS likes (
			id BIGINT PRIMARY KEY DEFAULT nextval('likes_id_seq'),
			user_id BIGINT NOT NULL,
			target_kind VARCHAR NOT NULL,
			target_id BIGINT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			UNIQUE (user_id, target_kind, target_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_likes_target ON likes(target_kind, target_id)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
