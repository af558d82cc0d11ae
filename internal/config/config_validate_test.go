// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = testSecret
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{"valid", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, true},
		{"bad auth mode", func(c *Config) { c.Security.AuthMode = "basic" }, true},
		{"jwt without secret", func(c *Config) { c.Security.JWTSecret = "" }, true},
		{"short secret", func(c *Config) { c.Security.JWTSecret = "short" }, true},
		{"placeholder secret", func(c *Config) { c.Security.JWTSecret = "REPLACE_WITH_A_REAL_SECRET_VALUE_OK" }, true},
		{"none mode needs no secret", func(c *Config) {
			c.Security.AuthMode = "none"
			c.Security.JWTSecret = ""
		}, false},
		{"none mode in production", func(c *Config) {
			c.Security.AuthMode = "none"
			c.Server.Environment = "production"
		}, true},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, true},
		{"explicit cors in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"https://colleges.example.org"}
		}, false},
		{"rate limit too low", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, false},
		{"rate window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"zero k", func(c *Config) { c.Recommend.K = 0 }, true},
		{"negative weight", func(c *Config) { c.Recommend.WeightSAT = -1 }, true},
		{"zero max matches", func(c *Config) { c.Resolve.MaxMatches = 0 }, true},
		{"threshold above one", func(c *Config) { c.Resolve.FuzzyThreshold = 2 }, true},
		{"refresh too fast", func(c *Config) { c.Catalog.RefreshInterval = time.Millisecond }, true},
		{"failure ratio zero", func(c *Config) { c.Catalog.BreakerFailureRatio = 0 }, true},
		{"batch size zero", func(c *Config) { c.Import.BatchSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	cfg := validConfig()
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard CORS with jwt auth should warn")
	}

	cfg.Security.AuthMode = "none"
	if cfg.ShouldWarnAboutCORS() {
		t.Error("no auth should not warn")
	}
}
