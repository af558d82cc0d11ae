// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bpaksoy/capstone/internal/metrics"
	"github.com/bpaksoy/capstone/internal/models"
)

// BookmarkedColleges returns the colleges a user has bookmarked, ordered by id.
func (db *DB) BookmarkedColleges(ctx context.Context, userID int64) ([]models.College, error) {
	query := `SELECT c.id, c.name, c.city, c.state, c.website, c.admission_rate, c.sat_score,
			c.cost_of_attendance, c.tuition_in_state, c.tuition_out_state, c.enrollment,
			c.latitude, c.longitude
		FROM bookmarks b
		JOIN colleges c ON c.id = b.college_id
		WHERE b.user_id = ?
		ORDER BY c.id`
	return db.queryColleges(ctx, "bookmarked", query, userID)
}

// BookmarkedIDs returns the ids of a user's bookmarks, ordered by id.
func (db *DB) BookmarkedIDs(ctx context.Context, userID int64) ([]int64, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		"SELECT college_id FROM bookmarks WHERE user_id = ? ORDER BY college_id", userID)
	if err != nil {
		metrics.RecordDBQuery("ids", "bookmarks", time.Since(start), err)
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer closeWithLog(rows, "rows")

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			metrics.RecordDBQuery("ids", "bookmarks", time.Since(start), err)
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		ids = append(ids, id)
	}
	err = rows.Err()
	metrics.RecordDBQuery("ids", "bookmarks", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("error iterating bookmarks: %w", err)
	}
	return ids, nil
}

// ToggleBookmark adds the bookmark when absent and removes it when present.
// It reports whether the college is bookmarked afterwards and returns
// ErrNotFound for an unknown college.
func (db *DB) ToggleBookmark(ctx context.Context, userID, collegeID int64) (bookmarked bool, err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("toggle", "bookmarks", time.Since(start), err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { rollbackOnError(tx, err) }()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM colleges WHERE id = ?", collegeID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("college %d: %w", collegeID, ErrNotFound)
		return false, err
	}
	if err != nil {
		return false, fmt.Errorf("failed to check college: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"DELETE FROM bookmarks WHERE user_id = ? AND college_id = ?", userID, collegeID)
	if err != nil {
		return false, fmt.Errorf("failed to remove bookmark: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if removed == 0 {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bookmarks (user_id, college_id, created_at) VALUES (?, ?, ?)",
			userID, collegeID, time.Now().UTC())
		if err != nil {
			return false, fmt.Errorf("failed to add bookmark: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit bookmark toggle: %w", err)
	}
	return removed == 0, nil
}
