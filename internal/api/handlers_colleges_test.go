// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"net/http"
	"testing"

	"github.com/bpaksoy/capstone/internal/models"
)

func TestGetCollege(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantName   string
	}{
		{name: "from index", path: "/api/v1/colleges/1", wantStatus: http.StatusOK, wantName: "Harvard University"},
		{name: "unknown id", path: "/api/v1/colleges/999", wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/api/v1/colleges/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/v1/colleges/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, "", -1)
			expectStatus(t, rec, tt.wantStatus)
			if tt.wantName == "" {
				return
			}
			if resp := decode[models.College](t, rec); resp.Data.Name != tt.wantName {
				t.Errorf("name = %q, want %q", resp.Data.Name, tt.wantName)
			}
		})
	}
}

func TestGetCollege_FallsBackToDatabase(t *testing.T) {
	env := newTestEnv(t)
	added := college(30, "Tufts University", "MA", 1480, 82000, 0.1)
	if _, err := env.db.UpsertColleges(t.Context(), []models.College{added}); err != nil {
		t.Fatal(err)
	}

	rec := env.do(t, http.MethodGet, "/api/v1/colleges/30", "", -1)
	expectStatus(t, rec, http.StatusOK)
	if resp := decode[models.College](t, rec); resp.Data.Name != "Tufts University" {
		t.Errorf("name = %q", resp.Data.Name)
	}
}

func TestAutocomplete(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantIDs    []int64
	}{
		{name: "case insensitive", query: "?prefix=harv", wantStatus: http.StatusOK, wantIDs: []int64{1}},
		{name: "accent folded", query: "?prefix=Univer", wantStatus: http.StatusOK, wantIDs: []int64{5, 3}},
		{name: "limit", query: "?prefix=univ&limit=1", wantStatus: http.StatusOK, wantIDs: []int64{5}},
		{name: "no match", query: "?prefix=xyz", wantStatus: http.StatusOK, wantIDs: []int64{}},
		{name: "missing prefix", query: "", wantStatus: http.StatusBadRequest},
		{name: "limit too high", query: "?prefix=a&limit=500", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/v1/colleges/autocomplete"+tt.query, "", -1)
			expectStatus(t, rec, tt.wantStatus)
			if tt.wantStatus != http.StatusOK {
				return
			}

			resp := decode[[]models.College](t, rec)
			if len(resp.Data) != len(tt.wantIDs) {
				t.Fatalf("got %d colleges, want %v", len(resp.Data), tt.wantIDs)
			}
			for i, c := range resp.Data {
				if c.ID != tt.wantIDs[i] {
					t.Errorf("college %d = %d, want %d", i, c.ID, tt.wantIDs[i])
				}
			}
			if resp.Meta.Pagination == nil || resp.Meta.Pagination.Count != len(tt.wantIDs) {
				t.Errorf("pagination = %+v", resp.Meta.Pagination)
			}
		})
	}
}
