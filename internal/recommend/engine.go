// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bpaksoy/capstone/internal/models"
)

// Engine produces bookmark-driven recommendations.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	scorer *Scorer
	logger zerolog.Logger

	requestCount      atomic.Int64
	noProfileCount    atomic.Int64
	noCandidatesCount atomic.Int64
	errorCount        atomic.Int64
}

// NewEngine creates a new recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg = cfg.Clone()
	return &Engine{
		config: cfg,
		scorer: NewScorer(cfg),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend ranks catalog colleges against the profile of bookmarks.
//
// The bookmark ids are always excluded in addition to excludeIDs. An empty
// bookmark list is not an error: the result has StatusNoProfile and Reason
// ErrNoProfileAvailable. Likewise an empty candidate set yields
// StatusNoCandidates. Only a failing fetch returns an error.
func (e *Engine) Recommend(ctx context.Context, bookmarks []models.College, excludeIDs []int64, fetch CandidateFetcher) (*Result, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if fetch == nil {
		e.errorCount.Add(1)
		return nil, ErrNoFetcher
	}

	logger := e.logger.With().Int("bookmarks", len(bookmarks)).Logger()

	profile, err := BuildProfile(bookmarks, e.config.Defaults)
	if errors.Is(err, ErrNoProfileAvailable) {
		e.noProfileCount.Add(1)
		logger.Debug().Msg("no bookmarks, skipping recommendation")
		return e.emptyResult(nil, StatusNoProfile, err, start), nil
	}
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("build profile: %w", err)
	}

	exclude := buildExclusionSet(bookmarks, excludeIDs)

	raw, err := e.fetchCandidates(ctx, fetch, profile.States, sortedIDs(exclude))
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	candidates := FilterCandidates(profile, exclude, raw, e.config.Limits.MaxCandidates)
	if len(candidates) == 0 {
		e.noCandidatesCount.Add(1)
		logger.Debug().Strs("states", profile.States).Msg("no same-state candidates")
		return e.emptyResult(profile, StatusNoCandidates, nil, start), nil
	}

	ranked := Rank(e.scorer.ScoreAll(profile, candidates), e.config.Limits.K)

	result := &Result{
		Colleges:        ranked,
		Profile:         profile,
		Status:          StatusOK,
		TotalCandidates: len(candidates),
		Metadata:        e.buildMetadata(start),
	}

	logger.Debug().
		Strs("states", profile.States).
		Int("fetched", len(raw)).
		Int("candidates", len(candidates)).
		Int("returned", len(ranked)).
		Int64("latency_ms", result.Metadata.LatencyMS).
		Msg("recommendation complete")

	return result, nil
}

// fetchCandidates runs the fetcher under the configured timeout.
func (e *Engine) fetchCandidates(ctx context.Context, fetch CandidateFetcher, states []string, exclude []int64) ([]models.College, error) {
	if timeout := e.config.Limits.FetchTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return fetch(ctx, states, exclude, e.config.Limits.MaxCandidates)
}

func (e *Engine) emptyResult(profile *TasteProfile, status Status, reason error, start time.Time) *Result {
	return &Result{
		Colleges: []ScoredCandidate{},
		Profile:  profile,
		Status:   status,
		Reason:   reason,
		Metadata: e.buildMetadata(start),
	}
}

func (e *Engine) buildMetadata(start time.Time) ResultMetadata {
	return ResultMetadata{
		K:         e.config.Limits.K,
		LatencyMS: time.Since(start).Milliseconds(),
		Timestamp: time.Now().UTC(),
	}
}

// Stats returns the cumulative engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:     e.requestCount.Load(),
		NoProfile:    e.noProfileCount.Load(),
		NoCandidates: e.noCandidatesCount.Load(),
		Errors:       e.errorCount.Load(),
	}
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}
