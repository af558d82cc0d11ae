// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import "errors"

// ErrInvalidQuery is returned for empty or whitespace-only text.
var ErrInvalidQuery = errors.New("invalid query: text is required")

// ErrNoSearcher is returned when terms exist but no name searcher was supplied.
var ErrNoSearcher = errors.New("name searcher is required")
