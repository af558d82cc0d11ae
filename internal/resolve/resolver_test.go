// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bpaksoy/capstone/internal/models"
)

func testCatalog() StaticNames {
	return StaticNames{
		{ID: 1, Name: "Massachusetts Institute of Technology", State: "MA"},
		{ID: 2, Name: "Harvard University", State: "MA"},
		{ID: 3, Name: "Boston University", State: "MA"},
		{ID: 4, Name: "Texas A&M University", State: "TX"},
		{ID: 5, Name: "Texas State University", State: "TX"},
		{ID: 6, Name: "Texas Tech University", State: "TX"},
		{ID: 7, Name: "University of Texas at Dallas", State: "TX"},
		{ID: 8, Name: "Ohio State University", State: "OH"},
	}
}

// overReturning ignores the terms and returns the whole catalog.
func overReturning(catalog []models.College) NameSearcher {
	return func(context.Context, []string) ([]models.College, error) {
		return catalog, nil
	}
}

func newTestResolver(t *testing.T, names NameSource) *Resolver {
	t.Helper()
	r, err := NewResolver(nil, names, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewResolver() error: %v", err)
	}
	return r
}

func TestNewResolver_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMatches = 0
	if _, err := NewResolver(cfg, nil, zerolog.Nop()); err == nil {
		t.Fatal("NewResolver() with MaxMatches=0 should fail")
	}
}

func TestResolveMentions_Acronym(t *testing.T) {
	catalog := testCatalog()
	r := newTestResolver(t, catalog)

	var gotTerms []string
	search := func(_ context.Context, terms []string) ([]models.College, error) {
		gotTerms = terms
		return catalog, nil
	}

	matches, err := r.ResolveMentions(t.Context(), "Tell me about MIT tuition", search)
	if err != nil {
		t.Fatalf("ResolveMentions() error: %v", err)
	}

	if len(gotTerms) != 1 || gotTerms[0] != "Massachusetts Institute of Technology" {
		t.Errorf("searcher terms = %v, want expanded MIT", gotTerms)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}
	if matches[0].College.ID != 1 || matches[0].Method != MethodTerm || matches[0].Score != 1 {
		t.Errorf("match = %+v, want MIT via term with score 1", matches[0])
	}
}

func TestResolveMentions_FuzzyFallback(t *testing.T) {
	catalog := testCatalog()
	r := newTestResolver(t, catalog)

	matches, err := r.ResolveMentions(t.Context(), "Harvad University", overReturning(catalog))
	if err != nil {
		t.Fatalf("ResolveMentions() error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].College.Name != "Harvard University" {
		t.Errorf("matched %q, want Harvard University", matches[0].College.Name)
	}
	if matches[0].Method != MethodFuzzy {
		t.Errorf("Method = %q, want fuzzy", matches[0].Method)
	}
	if matches[0].Score <= 0.4 {
		t.Errorf("Score = %f, want > 0.4", matches[0].Score)
	}
	if got := r.Stats().FuzzyMatches; got != 1 {
		t.Errorf("Stats().FuzzyMatches = %d, want 1", got)
	}
}

func TestResolveMentions_FuzzyOnlyForNames(t *testing.T) {
	catalog := StaticNames{
		{ID: 1, Name: "Harvard University"},
		{ID: 2, Name: "Yale University"},
		{ID: 3, Name: "Boston College"},
		{ID: 4, Name: "Rice University"},
		{ID: 5, Name: "Bates College"},
		{ID: 6, Name: "Reed College"},
	}
	r := newTestResolver(t, catalog)
	nothing := func(context.Context, []string) ([]models.College, error) { return nil, nil }

	tests := []struct {
		text   string
		wantID int64
	}{
		{"what is a good college", 0},
		{"best cheap college", 0},
		{"Tell me about Harvad", 1},
		{"Harvad University", 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			matches, err := r.ResolveMentions(t.Context(), tt.text, nothing)
			if err != nil {
				t.Fatalf("ResolveMentions() error: %v", err)
			}
			if tt.wantID == 0 {
				if len(matches) != 0 {
					t.Errorf("matches = %+v, want none", matches)
				}
				return
			}
			if len(matches) != 1 || matches[0].College.ID != tt.wantID || matches[0].Method != MethodFuzzy {
				t.Errorf("matches = %+v, want college %d via fuzzy", matches, tt.wantID)
			}
		})
	}
}

func TestResolveMentions_TopByScore(t *testing.T) {
	catalog := testCatalog()
	r := newTestResolver(t, catalog)

	matches, err := r.ResolveMentions(t.Context(), "Texas State schools", overReturning(catalog))
	if err != nil {
		t.Fatalf("ResolveMentions() error: %v", err)
	}

	// Texas State satisfies both terms; the rest tie at one and keep
	// searcher order.
	want := []int64{5, 4, 6}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d", len(matches), len(want))
	}
	for i, id := range want {
		if matches[i].College.ID != id {
			t.Errorf("matches[%d] = %d (%s), want %d", i, matches[i].College.ID, matches[i].College.Name, id)
		}
	}
	if matches[0].Score != 2 || matches[1].Score != 1 {
		t.Errorf("scores = %f, %f, want 2, 1", matches[0].Score, matches[1].Score)
	}
}

func TestResolveMentions_InvalidQuery(t *testing.T) {
	r := newTestResolver(t, testCatalog())

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := r.ResolveMentions(t.Context(), text, overReturning(nil)); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("ResolveMentions(%q) error = %v, want ErrInvalidQuery", text, err)
		}
	}
}

func TestResolveMentions_NoMatchIsNotError(t *testing.T) {
	r := newTestResolver(t, nil)

	matches, err := r.ResolveMentions(t.Context(), "Quantum Zebra", overReturning(testCatalog()))
	if err != nil {
		t.Fatalf("ResolveMentions() error: %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Errorf("matches = %v, want empty non-nil slice", matches)
	}
	if got := r.Stats().NoMatch; got != 1 {
		t.Errorf("Stats().NoMatch = %d, want 1", got)
	}
}

func TestResolveMentions_NoTermsSkipsSearcher(t *testing.T) {
	r := newTestResolver(t, testCatalog())

	called := false
	search := func(context.Context, []string) ([]models.College, error) {
		called = true
		return nil, nil
	}

	if _, err := r.ResolveMentions(t.Context(), "tell me about it", search); err != nil {
		t.Fatalf("ResolveMentions() error: %v", err)
	}
	if called {
		t.Error("searcher should not run without terms")
	}
}

func TestResolveMentions_SearchErrors(t *testing.T) {
	r := newTestResolver(t, testCatalog())

	if _, err := r.ResolveMentions(t.Context(), "Stanford", nil); !errors.Is(err, ErrNoSearcher) {
		t.Errorf("nil searcher error = %v, want ErrNoSearcher", err)
	}

	boom := errors.New("connection reset")
	search := func(context.Context, []string) ([]models.College, error) { return nil, boom }
	if _, err := r.ResolveMentions(t.Context(), "Stanford", search); !errors.Is(err, boom) {
		t.Errorf("search error = %v, want wrapped %v", err, boom)
	}
}

func TestResolveMentions_DuplicateRecords(t *testing.T) {
	catalog := testCatalog()
	r := newTestResolver(t, catalog)

	dup := append(catalog[:1:1], catalog[0], catalog[0])
	matches, err := r.ResolveMentions(t.Context(), "MIT", overReturning(dup))
	if err != nil {
		t.Fatalf("ResolveMentions() error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("got %d matches, want duplicates collapsed to 1", len(matches))
	}
}

func TestResolveMentions_Deterministic(t *testing.T) {
	catalog := testCatalog()
	r := newTestResolver(t, catalog)

	first, err := r.ResolveMentions(t.Context(), "Texas State University", overReturning(catalog))
	if err != nil {
		t.Fatalf("ResolveMentions() error: %v", err)
	}
	for range 5 {
		again, err := r.ResolveMentions(t.Context(), "Texas State University", overReturning(catalog))
		if err != nil {
			t.Fatalf("ResolveMentions() error: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("result size changed")
		}
		for i := range first {
			if again[i].College.ID != first[i].College.ID || again[i].Score != first[i].Score {
				t.Errorf("position %d changed", i)
			}
		}
	}
}

func TestSuggest(t *testing.T) {
	r := newTestResolver(t, testCatalog())

	if s, ok := r.Suggest("Bostn University"); !ok || s.College.ID != 3 {
		t.Errorf("Suggest(Bostn University) = %+v, %v, want Boston University", s, ok)
	}

	empty := newTestResolver(t, nil)
	if _, ok := empty.Suggest("Boston University"); ok {
		t.Error("Suggest() without a name source should not suggest")
	}
}
