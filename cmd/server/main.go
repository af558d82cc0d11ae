// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

// Package main is the entry point for the capstone college service.
//
// The binary carries the HTTP server and a handful of operator commands:
//
//	capstone serve                       run the API under the supervisor tree
//	capstone import --file ipeds.csv     load an IPEDS export into DuckDB
//	capstone recommend --user 7          print recommendations for a user
//	capstone resolve "I got into MIT"    print resolved college mentions
//	capstone token --user 7              issue a development access token
//
// # Configuration
//
// Every command loads configuration through Koanf v2 (defaults, then an
// optional YAML file, then environment variables). --config points at an
// explicit YAML file and --log-level overrides LOG_LEVEL.
//
// # Signal Handling
//
// serve shuts down gracefully on SIGINT and SIGTERM. Every service in the
// supervisor tree gets its ShutdownTimeout to stop before the process exits.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitConfig  = 2
)

// configError marks failures that happen before any work starts.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var cfgErr *configError
		if errors.As(err, &cfgErr) {
			os.Exit(ExitConfig)
		}
		os.Exit(ExitError)
	}
}
