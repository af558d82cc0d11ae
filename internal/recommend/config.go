// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the contribution of each feature difference to the distance.
	Weights Weights `json:"weights"`

	// Normalization holds the denominators that bring raw differences into [0, 1].
	Normalization Normalization `json:"normalization"`

	// Defaults are substituted for missing numeric features, both when
	// averaging a profile with no usable values and when scoring a candidate.
	Defaults Defaults `json:"defaults"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// Weights defines the per-feature weight of the distance.
type Weights struct {
	// SAT weights the normalized SAT difference.
	// Default: 0.4.
	SAT float64 `json:"sat"`

	// Admission weights the admission rate difference.
	// Default: 0.4.
	Admission float64 `json:"admission"`

	// Cost weights the normalized cost of attendance difference.
	// Default: 0.2.
	Cost float64 `json:"cost"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.SAT + w.Admission + w.Cost
}

// Normalization holds the fixed scale of each raw feature.
type Normalization struct {
	// SATScale is the maximum composite SAT score.
	// Default: 1600.
	SATScale float64 `json:"sat_scale"`

	// CostCeiling is the cost difference treated as maximally dissimilar.
	// Default: 60000.
	CostCeiling float64 `json:"cost_ceiling"`
}

// Defaults are the values used in place of a nil feature.
type Defaults struct {
	// SAT is the default composite SAT score.
	// Default: 1100.
	SAT float64 `json:"sat"`

	// AdmissionRate is the default admission rate.
	// Default: 0.6.
	AdmissionRate float64 `json:"admission_rate"`

	// Cost is the default annual cost of attendance.
	// Default: 30000.
	Cost float64 `json:"cost"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// MaxCandidates caps how many same-state colleges are scored.
	// Default: 500.
	MaxCandidates int `json:"max_candidates"`

	// K is the number of recommendations returned.
	// Default: 10.
	K int `json:"k"`

	// FetchTimeout bounds the candidate fetch.
	// Default: 10s.
	FetchTimeout time.Duration `json:"fetch_timeout"`
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			SAT:       0.4,
			Admission: 0.4,
			Cost:      0.2,
		},
		Normalization: Normalization{
			SATScale:    1600,
			CostCeiling: 60000,
		},
		Defaults: Defaults{
			SAT:           1100,
			AdmissionRate: 0.6,
			Cost:          30000,
		},
		Limits: LimitsConfig{
			MaxCandidates: 500,
			K:             10,
			FetchTimeout:  10 * time.Second,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.SAT < 0 || c.Weights.Admission < 0 || c.Weights.Cost < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	if c.Weights.Sum() <= 0 {
		return fmt.Errorf("weights must not all be zero")
	}

	if c.Normalization.SATScale <= 0 {
		return fmt.Errorf("normalization.sat_scale must be positive, got %f", c.Normalization.SATScale)
	}
	if c.Normalization.CostCeiling <= 0 {
		return fmt.Errorf("normalization.cost_ceiling must be positive, got %f", c.Normalization.CostCeiling)
	}

	if c.Defaults.AdmissionRate < 0 || c.Defaults.AdmissionRate > 1 {
		return fmt.Errorf("defaults.admission_rate must be in [0, 1], got %f", c.Defaults.AdmissionRate)
	}
	if c.Defaults.SAT < 0 || c.Defaults.Cost < 0 {
		return fmt.Errorf("defaults must be non-negative, got %+v", c.Defaults)
	}

	if c.Limits.MaxCandidates < 1 {
		return fmt.Errorf("limits.max_candidates must be positive, got %d", c.Limits.MaxCandidates)
	}
	if c.Limits.K < 1 {
		return fmt.Errorf("limits.k must be positive, got %d", c.Limits.K)
	}
	if c.Limits.FetchTimeout < 0 {
		return fmt.Errorf("limits.fetch_timeout must be non-negative, got %v", c.Limits.FetchTimeout)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
