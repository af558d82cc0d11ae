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
	"strings"
	"time"

	"github.com/bpaksoy/capstone/internal/metrics"
	"github.com/bpaksoy/capstone/internal/models"
)

const collegeColumns = `id, name, city, state, website, admission_rate, sat_score,
	cost_of_attendance, tuition_in_state, tuition_out_state, enrollment, latitude, longitude`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollege(row rowScanner) (models.College, error) {
	var (
		c                                       models.College
		admission, lat, lon                     sql.NullFloat64
		sat, cost, tuitionIn, tuitionOut, enrol sql.NullInt64
	)
	err := row.Scan(&c.ID, &c.Name, &c.City, &c.State, &c.Website,
		&admission, &sat, &cost, &tuitionIn, &tuitionOut, &enrol, &lat, &lon)
	if err != nil {
		return models.College{}, err
	}

	c.AdmissionRate = nullFloat(admission)
	c.SATScore = nullInt(sat)
	c.CostOfAttendance = nullInt(cost)
	c.TuitionInState = nullInt(tuitionIn)
	c.TuitionOutState = nullInt(tuitionOut)
	c.Enrollment = nullInt(enrol)
	c.Latitude = nullFloat(lat)
	c.Longitude = nullFloat(lon)
	return c, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return models.Float64Ptr(v.Float64)
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	return models.IntPtr(int(v.Int64))
}

// nullable converts optional pointers into driver values.
func nullable[T int | float64](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func (db *DB) queryColleges(ctx context.Context, operation, query string, args ...any) ([]models.College, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.RecordDBQuery(operation, "colleges", time.Since(start), err)
		return nil, fmt.Errorf("failed to query colleges: %w", err)
	}
	defer closeWithLog(rows, "rows")

	colleges := []models.College{}
	for rows.Next() {
		c, err := scanCollege(rows)
		if err != nil {
			metrics.RecordDBQuery(operation, "colleges", time.Since(start), err)
			return nil, fmt.Errorf("failed to scan college: %w", err)
		}
		colleges = append(colleges, c)
	}
	err = rows.Err()
	metrics.RecordDBQuery(operation, "colleges", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("error iterating colleges: %w", err)
	}
	return colleges, nil
}

// FetchCandidates returns colleges located in any of states, skipping the
// excluded ids, ordered by id and capped at limit (no cap when limit <= 0).
// It satisfies recommend.CandidateFetcher.
func (db *DB) FetchCandidates(ctx context.Context, states []string, exclude []int64, limit int) ([]models.College, error) {
	if len(states) == 0 {
		return []models.College{}, nil
	}

	var sb strings.Builder
	args := make([]any, 0, len(states)+len(exclude)+1)

	sb.WriteString("SELECT ")
	sb.WriteString(collegeColumns)
	sb.WriteString(" FROM colleges WHERE state IN (")
	sb.WriteString(placeholders(len(states)))
	sb.WriteString(")")
	for _, s := range states {
		args = append(args, s)
	}

	if len(exclude) > 0 {
		sb.WriteString(" AND id NOT IN (")
		sb.WriteString(placeholders(len(exclude)))
		sb.WriteString(")")
		for _, id := range exclude {
			args = append(args, id)
		}
	}

	sb.WriteString(" ORDER BY id")
	if limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	return db.queryColleges(ctx, "fetch_candidates", sb.String(), args...)
}

// SearchNames returns colleges whose name contains any of terms, ignoring
// case and accents, ordered by id. It satisfies resolve.NameSearcher.
func (db *DB) SearchNames(ctx context.Context, terms []string) ([]models.College, error) {
	conds := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		conds = append(conds, `strip_accents(name) ILIKE strip_accents(?) ESCAPE '\'`)
		args = append(args, "%"+escapeLike(term)+"%")
	}
	if len(conds) == 0 {
		return []models.College{}, nil
	}

	query := "SELECT " + collegeColumns + " FROM colleges WHERE " +
		strings.Join(conds, " OR ") + " ORDER BY id"
	return db.queryColleges(ctx, "search_names", query, args...)
}

// escapeLike escapes LIKE wildcards so terms match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListColleges returns the whole catalog ordered by id.
func (db *DB) ListColleges(ctx context.Context) ([]models.College, error) {
	return db.queryColleges(ctx, "list", "SELECT "+collegeColumns+" FROM colleges ORDER BY id")
}

// GetCollege returns one college or ErrNotFound.
func (db *DB) GetCollege(ctx context.Context, id int64) (*models.College, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	row := db.conn.QueryRowContext(ctx, "SELECT "+collegeColumns+" FROM colleges WHERE id = ?", id)
	c, err := scanCollege(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("get", "colleges", time.Since(start), nil)
		return nil, fmt.Errorf("college %d: %w", id, ErrNotFound)
	}
	metrics.RecordDBQuery("get", "colleges", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get college %d: %w", id, err)
	}
	return &c, nil
}

// CountColleges returns the catalog size.
func (db *DB) CountColleges(ctx context.Context) (int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var n int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM colleges").Scan(&n)
	metrics.RecordDBQuery("count", "colleges", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count colleges: %w", err)
	}
	return n, nil
}

// UpsertColleges inserts or replaces colleges in a single transaction and
// returns the number written.
func (db *DB) UpsertColleges(ctx context.Context, colleges []models.College) (n int, err error) {
	if len(colleges) == 0 {
		return 0, nil
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("upsert", "colleges", time.Since(start), err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { rollbackOnError(tx, err) }()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO colleges ("+collegeColumns+
		") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := range colleges {
		c := &colleges[i]
		if c.ID <= 0 || strings.TrimSpace(c.Name) == "" {
			return 0, fmt.Errorf("college at index %d has no id or name", i)
		}
		_, err = stmt.ExecContext(ctx,
			c.ID, c.Name, c.City, c.State, c.Website,
			nullable(c.AdmissionRate), nullable(c.SATScore), nullable(c.CostOfAttendance),
			nullable(c.TuitionInState), nullable(c.TuitionOutState), nullable(c.Enrollment),
			nullable(c.Latitude), nullable(c.Longitude),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert college %d: %w", c.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit upsert: %w", err)
	}
	return len(colleges), nil
}
