// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import "fmt"

// Config contains all configuration for the resolver.
type Config struct {
	// MaxMatches caps the number of term matches returned.
	// Default: 3.
	MaxMatches int `json:"max_matches"`

	// MinTokenLength is the shortest non-acronym token kept.
	// Default: 5.
	MinTokenLength int `json:"min_token_length"`

	// MinAcronymLength is the shortest all-uppercase token kept.
	// Default: 2.
	MinAcronymLength int `json:"min_acronym_length"`

	// FuzzyThreshold is the score a fuzzy suggestion must exceed.
	// Default: 0.4.
	FuzzyThreshold float64 `json:"fuzzy_threshold"`

	// PrefixBonus is added when a name word starts with the query prefix.
	// Default: 0.1.
	PrefixBonus float64 `json:"prefix_bonus"`

	// PrefixLength is the number of leading query letters used for the bonus.
	// Default: 3.
	PrefixLength int `json:"prefix_length"`
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxMatches:       3,
		MinTokenLength:   5,
		MinAcronymLength: 2,
		FuzzyThreshold:   0.4,
		PrefixBonus:      0.1,
		PrefixLength:     3,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxMatches < 1 {
		return fmt.Errorf("max_matches must be positive, got %d", c.MaxMatches)
	}
	if c.MinTokenLength < 1 {
		return fmt.Errorf("min_token_length must be positive, got %d", c.MinTokenLength)
	}
	if c.MinAcronymLength < 1 {
		return fmt.Errorf("min_acronym_length must be positive, got %d", c.MinAcronymLength)
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("fuzzy_threshold must be in [0, 1], got %f", c.FuzzyThreshold)
	}
	if c.PrefixBonus < 0 {
		return fmt.Errorf("prefix_bonus must be non-negative, got %f", c.PrefixBonus)
	}
	if c.PrefixLength < 1 {
		return fmt.Errorf("prefix_length must be positive, got %d", c.PrefixLength)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
