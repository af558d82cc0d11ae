// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/bpaksoy/capstone/internal/models"
	"github.com/bpaksoy/capstone/internal/resolve"
)

func TestResolve(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		wantIDs []int64
	}{
		{name: "get single word", method: http.MethodGet, target: "/api/v1/resolve?text=" + url.QueryEscape("I visited Harvard"), wantIDs: []int64{1}},
		{name: "post body", method: http.MethodPost, target: "/api/v1/resolve", body: `{"text":"thinking about Boston"}`, wantIDs: []int64{2}},
		{name: "accent folded", method: http.MethodGet, target: "/api/v1/resolve?text=" + url.QueryEscape("Montreal sounds fun"), wantIDs: []int64{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.target, tt.body, -1)
			expectStatus(t, rec, http.StatusOK)

			resp := decode[ResolveResponse](t, rec)
			if len(resp.Data.Matches) != len(tt.wantIDs) {
				t.Fatalf("matches = %+v, want ids %v", resp.Data.Matches, tt.wantIDs)
			}
			for i, m := range resp.Data.Matches {
				if m.College.ID != tt.wantIDs[i] || m.Method != resolve.MethodTerm {
					t.Errorf("match %d = %d/%s, want %d/term", i, m.College.ID, m.Method, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestResolve_Cached(t *testing.T) {
	env := newTestEnv(t)
	target := "/api/v1/resolve?text=Harvard"

	first := decode[ResolveResponse](t, env.do(t, http.MethodGet, target, "", -1))
	if first.Meta.Cached {
		t.Error("first call should not be cached")
	}
	second := decode[ResolveResponse](t, env.do(t, http.MethodGet, target, "", -1))
	if !second.Meta.Cached {
		t.Error("second call should be cached")
	}

	// A new catalog generation invalidates cached results.
	env.index.Load(append(testColleges(), models.College{ID: 20, Name: "Harvard Extension School", State: "MA"}))
	third := decode[ResolveResponse](t, env.do(t, http.MethodGet, target, "", -1))
	if third.Meta.Cached {
		t.Error("call after reload should miss the cache")
	}
}

func TestResolve_Invalid(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode string
	}{
		{name: "missing text", method: http.MethodGet, target: "/api/v1/resolve", wantCode: ErrCodeValidationFailed},
		{name: "blank text", method: http.MethodGet, target: "/api/v1/resolve?text=%20%20", wantCode: ErrCodeValidationFailed},
		{name: "too long", method: http.MethodGet, target: "/api/v1/resolve?text=" + strings.Repeat("a", 1001), wantCode: ErrCodeValidationFailed},
		{name: "empty body", method: http.MethodPost, target: "/api/v1/resolve", wantCode: ErrCodeBadRequest},
		{name: "malformed body", method: http.MethodPost, target: "/api/v1/resolve", body: `{"text":`, wantCode: ErrCodeBadRequest},
		{name: "unknown field", method: http.MethodPost, target: "/api/v1/resolve", body: `{"query":"x"}`, wantCode: ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.target, tt.body, -1)
			expectStatus(t, rec, http.StatusBadRequest)
			if resp := decode[any](t, rec); resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/suggest?q="+url.QueryEscape("Harvard Universty"), "", -1)
	expectStatus(t, rec, http.StatusOK)
	resp := decode[SuggestResponse](t, rec)
	if resp.Data.Suggestion == nil || resp.Data.Suggestion.College.ID != 1 {
		t.Fatalf("suggestion = %+v, want Harvard", resp.Data.Suggestion)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/suggest?q=zzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", "", -1)
	expectStatus(t, rec, http.StatusOK)
	if resp := decode[SuggestResponse](t, rec); resp.Data.Suggestion != nil {
		t.Errorf("suggestion = %+v, want none", resp.Data.Suggestion)
	}

	expectStatus(t, env.do(t, http.MethodGet, "/api/v1/suggest", "", -1), http.StatusBadRequest)
}
