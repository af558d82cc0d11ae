// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bpaksoy/capstone/internal/models"
)

// NameSearcher returns catalog colleges whose names may satisfy any of
// terms. It may over-return; every record is re-checked by the Matcher.
type NameSearcher func(ctx context.Context, terms []string) ([]models.College, error)

// NameSource supplies the full catalog for the fuzzy fallback. The returned
// slice must not be modified by either side.
type NameSource interface {
	Colleges() []models.College
}

// Method identifies how a match was found.
type Method string

const (
	// MethodTerm means the name satisfied one or more query terms.
	MethodTerm Method = "term"

	// MethodFuzzy means the name was the best edit-distance suggestion.
	MethodFuzzy Method = "fuzzy"
)

// NameMatch is a resolved mention.
type NameMatch struct {
	Query   string         `json:"query"`
	College models.College `json:"college"`

	// Score is the number of satisfied terms for MethodTerm and the fuzzy
	// score for MethodFuzzy.
	Score  float64 `json:"score"`
	Method Method  `json:"method"`
}

// Stats are cumulative resolver counters.
type Stats struct {
	Requests     int64 `json:"requests"`
	TermMatches  int64 `json:"term_matches"`
	FuzzyMatches int64 `json:"fuzzy_matches"`
	NoMatch      int64 `json:"no_match"`
}

// Resolver resolves college mentions in free text.
type Resolver struct {
	config *Config
	names  NameSource
	logger zerolog.Logger

	requests     atomic.Int64
	termMatches  atomic.Int64
	fuzzyMatches atomic.Int64
	noMatch      atomic.Int64
}

// NewResolver creates a resolver. A nil cfg uses DefaultConfig. names may
// be nil, which disables the fuzzy fallback.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewResolver(cfg *Config, names NameSource, logger zerolog.Logger) (*Resolver, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Resolver{
		config: cfg.Clone(),
		names:  names,
		logger: logger.With().Str("component", "resolve").Logger(),
	}, nil
}

// Terms returns the search terms derived from text.
func (r *Resolver) Terms(text string) []Term {
	return Terms(text, r.config)
}

// ResolveMentions returns up to MaxMatches colleges referenced by text,
// best first. Records are scored by how many terms they satisfy; ties keep
// the searcher's order. When no record satisfies a term and the kept terms
// look like a single name, the fuzzy fallback may return one MethodFuzzy
// match. An empty slice is a valid result.
func (r *Resolver) ResolveMentions(ctx context.Context, text string, search NameSearcher) ([]NameMatch, error) {
	r.requests.Add(1)

	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidQuery
	}

	terms := r.Terms(text)

	matches, err := r.matchTerms(ctx, text, terms, search)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		r.termMatches.Add(1)
		r.logger.Debug().Int("terms", len(terms)).Int("matches", len(matches)).Str("method", string(MethodTerm)).Msg("resolved mentions")
		return matches, nil
	}

	if s, ok := r.suggestFromTerms(terms); ok {
		r.fuzzyMatches.Add(1)
		r.logger.Debug().Int("terms", len(terms)).Float64("score", s.Score).Str("method", string(MethodFuzzy)).Msg("resolved mentions")
		return []NameMatch{{
			Query:   text,
			College: s.College,
			Score:   s.Score,
			Method:  MethodFuzzy,
		}}, nil
	}

	r.noMatch.Add(1)
	r.logger.Debug().Int("terms", len(terms)).Msg("no mentions resolved")
	return []NameMatch{}, nil
}

func (r *Resolver) matchTerms(ctx context.Context, text string, terms []Term, search NameSearcher) ([]NameMatch, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	if search == nil {
		return nil, ErrNoSearcher
	}

	texts := make([]string, len(terms))
	for i, t := range terms {
		texts[i] = t.Text
	}

	records, err := search(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("search names: %w", err)
	}

	matcher := NewMatcher(terms)
	seen := make(map[int64]struct{}, len(records))
	matches := make([]NameMatch, 0, len(records))
	for i := range records {
		if _, dup := seen[records[i].ID]; dup {
			continue
		}
		seen[records[i].ID] = struct{}{}

		score := matcher.Count(records[i].Name)
		if score == 0 {
			continue
		}
		matches = append(matches, NameMatch{
			Query:   text,
			College: records[i],
			Score:   float64(score),
			Method:  MethodTerm,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > r.config.MaxMatches {
		matches = matches[:r.config.MaxMatches]
	}
	return matches, nil
}

// maxFuzzyTerms is the most kept terms a query may have and still be
// treated as one misspelled name.
const maxFuzzyTerms = 3

// suggestFromTerms runs the fuzzy fallback on the kept terms only, so
// filler words never take part in the comparison.
func (r *Resolver) suggestFromTerms(terms []Term) (Suggestion, bool) {
	if len(terms) == 0 || len(terms) > maxFuzzyTerms {
		return Suggestion{}, false
	}
	texts := make([]string, len(terms))
	for i, t := range terms {
		texts[i] = t.Text
	}
	return r.Suggest(strings.Join(texts, " "))
}

// Suggest returns the catalog college whose name is closest to query, if
// its score exceeds FuzzyThreshold.
func (r *Resolver) Suggest(query string) (Suggestion, bool) {
	if r.names == nil {
		return Suggestion{}, false
	}
	return bestSuggestion(query, r.names.Colleges(), r.config)
}

// Stats returns the cumulative resolver counters.
func (r *Resolver) Stats() Stats {
	return Stats{
		Requests:     r.requests.Load(),
		TermMatches:  r.termMatches.Load(),
		FuzzyMatches: r.fuzzyMatches.Load(),
		NoMatch:      r.noMatch.Load(),
	}
}

// Config returns a copy of the resolver configuration.
func (r *Resolver) Config() *Config {
	return r.config.Clone()
}

// StaticNames is a fixed NameSource.
type StaticNames []models.College

// Colleges returns the slice itself.
func (s StaticNames) Colleges() []models.College {
	return s
}
