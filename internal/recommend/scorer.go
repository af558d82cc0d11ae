// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package recommend

import (
	"math"

	"github.com/bpaksoy/capstone/internal/models"
)

// Scorer computes the distance between a profile and a candidate:
//
//	sat_diff  = |sat - profile.sat| / SATScale
//	adm_diff  = |admission - profile.admission|
//	cost_diff = |cost - profile.cost| / CostCeiling
//	distance  = w.SAT*sat_diff + w.Admission*adm_diff + w.Cost*cost_diff
//
// Nil candidate features are replaced by Defaults before differencing.
type Scorer struct {
	weights  Weights
	norm     Normalization
	defaults Defaults
}

// NewScorer creates a scorer from cfg. A nil cfg uses DefaultConfig.
func NewScorer(cfg *Config) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Scorer{
		weights:  cfg.Weights,
		norm:     cfg.Normalization,
		defaults: cfg.Defaults,
	}
}

// Score returns the candidate's distance and per-feature breakdown.
func (s *Scorer) Score(profile *TasteProfile, c *models.College) ScoredCandidate {
	sat := s.defaults.SAT
	if c.SATScore != nil {
		sat = float64(*c.SATScore)
	}
	admission := s.defaults.AdmissionRate
	if c.AdmissionRate != nil {
		admission = *c.AdmissionRate
	}
	cost := s.defaults.Cost
	if c.CostOfAttendance != nil {
		cost = float64(*c.CostOfAttendance)
	}

	b := Breakdown{
		SATDiff:       math.Abs(sat-profile.AverageSAT) / s.norm.SATScale,
		AdmissionDiff: math.Abs(admission - profile.AverageAdmissionRate),
		CostDiff:      math.Abs(cost-profile.AverageCost) / s.norm.CostCeiling,
	}

	return ScoredCandidate{
		College:   *c,
		Distance:  s.weights.SAT*b.SATDiff + s.weights.Admission*b.AdmissionDiff + s.weights.Cost*b.CostDiff,
		Breakdown: b,
	}
}

// Distance returns only the scalar distance.
func (s *Scorer) Distance(profile *TasteProfile, c *models.College) float64 {
	return s.Score(profile, c).Distance
}

// ScoreAll scores every candidate, preserving input order.
func (s *Scorer) ScoreAll(profile *TasteProfile, candidates []models.College) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))
	for i := range candidates {
		scored[i] = s.Score(profile, &candidates[i])
	}
	return scored
}
