// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package config provides centralized configuration management for the
college recommendation service.

# Configuration Sources

Configuration is layered with Koanf v2, later layers winning:

 1. Struct defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, or the first of DefaultConfigPaths
 3. Environment variables, mapped explicitly by envTransformFunc

Unmapped environment variables are ignored so unrelated process
environment never leaks into configuration.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Database:
  - DUCKDB_PATH: Database file path (default: /data/capstone.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: Worker threads, 0 for all CPUs (default: 0)

Security:
  - AUTH_MODE: jwt or none (default: jwt)
  - JWT_SECRET: HMAC signing secret, at least 32 characters for jwt mode
  - JWT_TTL: Issued token lifetime (default: 24h)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Recommendation (RECOMMEND_*), resolver (RESOLVE_*), catalog index
(CATALOG_*), importer (IMPORT_*) and logging (LOG_LEVEL, LOG_FORMAT,
LOG_CALLER) settings follow the same pattern; see envTransformFunc.

# Usage Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}

	engine, err := recommend.NewEngine(cfg.RecommendConfig(), logging.Logger())
*/
package config
