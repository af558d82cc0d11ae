// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package recommend

import "errors"

// ErrNoProfileAvailable is returned by BuildProfile when there are no
// bookmarks to learn from. Engine.Recommend surfaces it as StatusNoProfile.
var ErrNoProfileAvailable = errors.New("no profile available: user has no bookmarks")

// ErrNoFetcher is returned when Recommend is called without a candidate fetcher.
var ErrNoFetcher = errors.New("candidate fetcher is required")
