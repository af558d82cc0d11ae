// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package database

import (
	"errors"
	"testing"
)

func TestToggleBookmark(t *testing.T) {
	db := setupTestDB(t)
	seedColleges(t, db)
	ctx := t.Context()

	steps := []struct {
		name      string
		user      int64
		college   int64
		want      bool
		wantAfter []int64
	}{
		{name: "add first", user: 1, college: 3, want: true, wantAfter: []int64{3}},
		{name: "add second", user: 1, college: 1, want: true, wantAfter: []int64{1, 3}},
		{name: "remove first", user: 1, college: 3, want: false, wantAfter: []int64{1}},
		{name: "re-add", user: 1, college: 3, want: true, wantAfter: []int64{1, 3}},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			got, err := db.ToggleBookmark(ctx, step.user, step.college)
			if err != nil {
				t.Fatalf("ToggleBookmark() error = %v", err)
			}
			if got != step.want {
				t.Errorf("bookmarked = %v, want %v", got, step.want)
			}
			ids, err := db.BookmarkedIDs(ctx, step.user)
			if err != nil {
				t.Fatalf("BookmarkedIDs() error = %v", err)
			}
			if !equalIDs(ids, step.wantAfter) {
				t.Errorf("ids = %v, want %v", ids, step.wantAfter)
			}
		})
	}
}

func TestToggleBookmark_UnknownCollege(t *testing.T) {
	db := setupTestDB(t)
	seedColleges(t, db)

	_, err := db.ToggleBookmark(t.Context(), 1, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	ids, err := db.BookmarkedIDs(t.Context(), 1)
	if err != nil {
		t.Fatalf("BookmarkedIDs() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want none", ids)
	}
}

func TestBookmarkedColleges(t *testing.T) {
	db := setupTestDB(t)
	seedColleges(t, db)
	ctx := t.Context()

	for _, id := range []int64{5, 1, 7} {
		if _, err := db.ToggleBookmark(ctx, 42, id); err != nil {
			t.Fatalf("ToggleBookmark(%d) error = %v", id, err)
		}
	}
	if _, err := db.ToggleBookmark(ctx, 43, 2); err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}

	got, err := db.BookmarkedColleges(ctx, 42)
	if err != nil {
		t.Fatalf("BookmarkedColleges() error = %v", err)
	}
	if ids := collegeIDs(got); !equalIDs(ids, []int64{1, 5, 7}) {
		t.Errorf("ids = %v, want [1 5 7]", ids)
	}
	if got[2].SATScore != nil {
		t.Errorf("college 7 should keep nil SAT, got %v", *got[2].SATScore)
	}

	none, err := db.BookmarkedColleges(ctx, 99)
	if err != nil {
		t.Fatalf("BookmarkedColleges() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("user without bookmarks got %v", collegeIDs(none))
	}
}
