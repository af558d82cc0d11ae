// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package config

import (
	"github.com/bpaksoy/capstone/internal/recommend"
	"github.com/bpaksoy/capstone/internal/resolve"
)

// RecommendConfig translates the recommend section into an engine config.
func (c *Config) RecommendConfig() *recommend.Config {
	r := c.Recommend
	return &recommend.Config{
		Weights: recommend.Weights{
			SAT:       r.WeightSAT,
			Admission: r.WeightAdmission,
			Cost:      r.WeightCost,
		},
		Normalization: recommend.Normalization{
			SATScale:    r.SATScale,
			CostCeiling: r.CostCeiling,
		},
		Defaults: recommend.Defaults{
			SAT:           r.DefaultSAT,
			AdmissionRate: r.DefaultAdmissionRate,
			Cost:          r.DefaultCost,
		},
		Limits: recommend.LimitsConfig{
			MaxCandidates: r.MaxCandidates,
			K:             r.K,
			FetchTimeout:  r.FetchTimeout,
		},
	}
}

// ResolveConfig translates the resolve section into a resolver config.
func (c *Config) ResolveConfig() *resolve.Config {
	r := c.Resolve
	return &resolve.Config{
		MaxMatches:       r.MaxMatches,
		MinTokenLength:   r.MinTokenLength,
		MinAcronymLength: r.MinAcronymLength,
		FuzzyThreshold:   r.FuzzyThreshold,
		PrefixBonus:      r.PrefixBonus,
		PrefixLength:     r.PrefixLength,
	}
}
