// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package importer

import "time"

// Stats holds statistics about an import operation.
type Stats struct {
	// Rows is the number of data rows read, including skipped ones.
	Rows int64 `json:"rows"`

	// Imported is the number of colleges written to the store.
	Imported int64 `json:"imported"`

	// Skipped is the number of rows rejected by the mapper.
	Skipped int64 `json:"skipped"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// DryRun indicates rows were mapped but not written.
	DryRun bool `json:"dry_run"`
}

// Duration returns the duration of the import operation.
func (s *Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// RowsPerSecond returns the import rate.
func (s *Stats) RowsPerSecond() float64 {
	duration := s.Duration().Seconds()
	if duration == 0 {
		return 0
	}
	return float64(s.Rows) / duration
}
