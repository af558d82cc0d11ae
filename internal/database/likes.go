// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/bpaksoy/capstone/internal/metrics"
	"github.com/bpaksoy/capstone/internal/models"
)

func validTarget(target models.Target) error {
	if !target.Kind.Valid() {
		return fmt.Errorf("invalid target kind %q", target.Kind.String())
	}
	if target.ID <= 0 {
		return fmt.Errorf("invalid target id %d", target.ID)
	}
	return nil
}

// AddLike records a like and reports whether it was new.
func (db *DB) AddLike(ctx context.Context, userID int64, target models.Target) (bool, error) {
	if err := validTarget(target); err != nil {
		return false, err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO likes (user_id, target_kind, target_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING`,
		userID, target.Kind.String(), target.ID, time.Now().UTC())
	metrics.RecordDBQuery("insert", "likes", time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// RemoveLike deletes a like and reports whether one existed.
func (db *DB) RemoveLike(ctx context.Context, userID int64, target models.Target) (bool, error) {
	if err := validTarget(target); err != nil {
		return false, err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.conn.ExecContext(ctx,
		"DELETE FROM likes WHERE user_id = ? AND target_kind = ? AND target_id = ?",
		userID, target.Kind.String(), target.ID)
	metrics.RecordDBQuery("delete", "likes", time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// CountLikes returns the number of likes on target.
func (db *DB) CountLikes(ctx context.Context, target models.Target) (int, error) {
	if err := validTarget(target); err != nil {
		return 0, err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var n int
	err := db.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM likes WHERE target_kind = ? AND target_id = ?",
		target.Kind.String(), target.ID).Scan(&n)
	metrics.RecordDBQuery("count", "likes", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}

// LikesByUser lists a user's likes, newest first. Rows whose stored kind no
// longer parses are skipped.
func (db *DB) LikesByUser(ctx context.Context, userID int64) ([]models.Like, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, target_kind, target_id, created_at
		FROM likes WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		metrics.RecordDBQuery("list", "likes", time.Since(start), err)
		return nil, fmt.Errorf("failed to query likes: %w", err)
	}
	defer closeWithLog(rows, "rows")

	likes := []models.Like{}
	for rows.Next() {
		var (
			like models.Like
			kind string
		)
		if err := rows.Scan(&like.ID, &like.UserID, &kind, &like.Target.ID, &like.CreatedAt); err != nil {
			metrics.RecordDBQuery("list", "likes", time.Since(start), err)
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		parsed, err := models.ParseTargetKind(kind)
		if err != nil {
			continue
		}
		like.Target.Kind = parsed
		likes = append(likes, like)
	}
	err = rows.Err()
	metrics.RecordDBQuery("list", "likes", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("error iterating likes: %w", err)
	}
	return likes, nil
}
