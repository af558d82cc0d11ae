// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import "errors"

var (
	// ErrInvalidID indicates a path or query id that is not a positive integer.
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrMissingDependency is returned by NewHandler for an incomplete Deps.
	ErrMissingDependency = errors.New("missing handler dependency")
)
