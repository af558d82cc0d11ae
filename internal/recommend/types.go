// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package recommend

import (
	"context"
	"time"

	"github.com/bpaksoy/capstone/internal/models"
)

// CandidateFetcher loads catalog colleges located in any of states, leaving
// out the excluded ids, returning at most limit records. Implementations
// should order by ascending id; FilterCandidates re-applies every rule
// regardless.
type CandidateFetcher func(ctx context.Context, states []string, exclude []int64, limit int) ([]models.College, error)

// Status describes why a Result has the colleges it has.
type Status string

const (
	// StatusOK means candidates were scored and ranked.
	StatusOK Status = "ok"

	// StatusNoProfile means the user had no bookmarks.
	StatusNoProfile Status = "no_profile"

	// StatusNoCandidates means no college shared a state with the bookmarks.
	StatusNoCandidates Status = "no_candidates"
)

// Breakdown holds the normalized, unweighted feature differences of a candidate.
type Breakdown struct {
	SATDiff       float64 `json:"sat_diff"`
	AdmissionDiff float64 `json:"admission_diff"`
	CostDiff      float64 `json:"cost_diff"`
}

// ScoredCandidate pairs a college with its distance from the profile.
// Lower distance is a better match.
type ScoredCandidate struct {
	College   models.College `json:"college"`
	Distance  float64        `json:"distance"`
	Breakdown Breakdown      `json:"breakdown"`
}

// Result is the outcome of a recommendation request.
type Result struct {
	// Colleges are ordered best match first.
	Colleges []ScoredCandidate `json:"colleges"`

	// Profile is nil when Status is StatusNoProfile.
	Profile *TasteProfile `json:"profile,omitempty"`

	Status Status `json:"status"`

	// TotalCandidates is the number of candidates scored after filtering.
	TotalCandidates int `json:"total_candidates"`

	// Reason carries the sentinel behind a non-ok status.
	Reason error `json:"-"`

	Metadata ResultMetadata `json:"metadata"`
}

// ResultMetadata contains request processing metadata.
type ResultMetadata struct {
	K         int       `json:"k"`
	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats are cumulative engine counters.
type Stats struct {
	Requests     int64 `json:"requests"`
	NoProfile    int64 `json:"no_profile"`
	NoCandidates int64 `json:"no_candidates"`
	Errors       int64 `json:"errors"`
}
