// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package config

import "time"

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Resolve   ResolveConfig   `koanf:"resolve"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Import    ImportConfig    `koanf:"import"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, production
}

// DatabaseConfig holds DuckDB configuration
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds authentication, rate limiting and CORS configuration
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"` // jwt, none
	JWTSecret         string        `koanf:"jwt_secret"`
	TokenTTL          time.Duration `koanf:"token_ttl"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// RecommendConfig holds the recommendation engine tunables.
// Weights and normalization constants are heuristics and may be recalibrated.
type RecommendConfig struct {
	WeightSAT            float64       `koanf:"weight_sat"`
	WeightAdmission      float64       `koanf:"weight_admission"`
	WeightCost           float64       `koanf:"weight_cost"`
	SATScale             float64       `koanf:"sat_scale"`
	CostCeiling          float64       `koanf:"cost_ceiling"`
	DefaultSAT           float64       `koanf:"default_sat"`
	DefaultAdmissionRate float64       `koanf:"default_admission_rate"`
	DefaultCost          float64       `koanf:"default_cost"`
	MaxCandidates        int           `koanf:"max_candidates"`
	K                    int           `koanf:"k"`
	FetchTimeout         time.Duration `koanf:"fetch_timeout"`
}

// ResolveConfig holds the entity resolver tunables
type ResolveConfig struct {
	MaxMatches       int           `koanf:"max_matches"`
	MinTokenLength   int           `koanf:"min_token_length"`
	MinAcronymLength int           `koanf:"min_acronym_length"`
	FuzzyThreshold   float64       `koanf:"fuzzy_threshold"`
	PrefixBonus      float64       `koanf:"prefix_bonus"`
	PrefixLength     int           `koanf:"prefix_length"`
	CacheSize        int           `koanf:"cache_size"`
	CacheTTL         time.Duration `koanf:"cache_ttl"`
}

// CatalogConfig holds catalog index and circuit breaker configuration
type CatalogConfig struct {
	RefreshInterval     time.Duration `koanf:"refresh_interval"`
	BreakerMaxRequests  uint32        `koanf:"breaker_max_requests"` // half-open probes
	BreakerInterval     time.Duration `koanf:"breaker_interval"`     // closed-state counter reset
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`      // open-state duration
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
}

// ImportConfig holds IPEDS CSV import configuration
type ImportConfig struct {
	Path          string `koanf:"path"`
	BatchSize     int    `koanf:"batch_size"`
	ProgressEvery int    `koanf:"progress_every"`
}
