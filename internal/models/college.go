// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package models

import "time"

// College is a single catalog record.
type College struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"` // Two-letter postal code
	Website string `json:"website,omitempty"`

	// Selectivity and cost features. Nil means the source had no value.
	AdmissionRate    *float64 `json:"admission_rate"`     // Fraction 0..1
	SATScore         *int     `json:"sat_score"`          // Verbal + math median, 400..1600
	CostOfAttendance *int     `json:"cost_of_attendance"` // USD per year

	TuitionInState  *int     `json:"tuition_in_state,omitempty"`
	TuitionOutState *int     `json:"tuition_out_state,omitempty"`
	Enrollment      *int     `json:"enrollment,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

// Bookmark records that a user saved a college.
type Bookmark struct {
	UserID    int64     `json:"user_id"`
	CollegeID int64     `json:"college_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
