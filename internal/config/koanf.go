// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/capstone/config.yaml",
	"/etc/capstone/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:      "/data/capstone.duckdb",
			MaxMemory: "1GB",
			Threads:   0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			AuthMode:          "jwt",
			JWTSecret:         "",
			TokenTTL:          24 * time.Hour,
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Recommend: RecommendConfig{
			WeightSAT:            0.4,
			WeightAdmission:      0.4,
			WeightCost:           0.2,
			SATScale:             1600,
			CostCeiling:          60000,
			DefaultSAT:           1100,
			DefaultAdmissionRate: 0.6,
			DefaultCost:          30000,
			MaxCandidates:        500,
			K:                    10,
			FetchTimeout:         10 * time.Second,
		},
		Resolve: ResolveConfig{
			MaxMatches:       3,
			MinTokenLength:   5,
			MinAcronymLength: 2,
			FuzzyThreshold:   0.4,
			PrefixBonus:      0.1,
			PrefixLength:     3,
			CacheSize:        1000,
			CacheTTL:         10 * time.Minute,
		},
		Catalog: CatalogConfig{
			RefreshInterval:     15 * time.Minute,
			BreakerMaxRequests:  3,
			BreakerInterval:     time.Minute,
			BreakerTimeout:      30 * time.Second,
			BreakerMinRequests:  10,
			BreakerFailureRatio: 0.6,
		},
		Import: ImportConfig{
			Path:          "",
			BatchSize:     500,
			ProgressEvery: 1000,
		},
	}
}

// Default returns the built-in defaults without consulting files or the
// environment. The result is not validated: JWTSecret is empty.
func Default() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// HTTP_PORT -> server.port, RECOMMEND_K -> recommend.k
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Database
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Security
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"jwt_ttl":             "security.token_ttl",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Recommendation engine
	"recommend_weight_sat":             "recommend.weight_sat",
	"recommend_weight_admission":       "recommend.weight_admission",
	"recommend_weight_cost":            "recommend.weight_cost",
	"recommend_sat_scale":              "recommend.sat_scale",
	"recommend_cost_ceiling":           "recommend.cost_ceiling",
	"recommend_default_sat":            "recommend.default_sat",
	"recommend_default_admission_rate": "recommend.default_admission_rate",
	"recommend_default_cost":           "recommend.default_cost",
	"recommend_max_candidates":         "recommend.max_candidates",
	"recommend_k":                      "recommend.k",
	"recommend_fetch_timeout":          "recommend.fetch_timeout",

	// Entity resolver
	"resolve_max_matches":        "resolve.max_matches",
	"resolve_min_token_length":   "resolve.min_token_length",
	"resolve_min_acronym_length": "resolve.min_acronym_length",
	"resolve_fuzzy_threshold":    "resolve.fuzzy_threshold",
	"resolve_prefix_bonus":       "resolve.prefix_bonus",
	"resolve_prefix_length":      "resolve.prefix_length",
	"resolve_cache_size":         "resolve.cache_size",
	"resolve_cache_ttl":          "resolve.cache_ttl",

	// Catalog index and circuit breaker
	"catalog_refresh_interval":      "catalog.refresh_interval",
	"catalog_breaker_max_requests":  "catalog.breaker_max_requests",
	"catalog_breaker_interval":      "catalog.breaker_interval",
	"catalog_breaker_timeout":       "catalog.breaker_timeout",
	"catalog_breaker_min_requests":  "catalog.breaker_min_requests",
	"catalog_breaker_failure_ratio": "catalog.breaker_failure_ratio",

	// Importer
	"import_path":           "import.path",
	"import_batch_size":     "import.batch_size",
	"import_progress_every": "import.progress_every",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped keys return "" and are skipped, so random environment variables
// never pollute the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
