// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package recommend

import (
	"testing"

	"github.com/bpaksoy/capstone/internal/models"
)

func scoredWith(distances ...float64) []ScoredCandidate {
	out := make([]ScoredCandidate, len(distances))
	for i, d := range distances {
		out[i] = ScoredCandidate{College: models.College{ID: int64(i + 1)}, Distance: d}
	}
	return out
}

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []ScoredCandidate
		k       int
		wantIDs []int64
	}{
		{"ascending order", scoredWith(0.3, 0.1, 0.2), 10, []int64{2, 3, 1}},
		{"truncates to k", scoredWith(0.5, 0.4, 0.3, 0.2, 0.1), 2, []int64{5, 4}},
		{"fewer than k", scoredWith(0.2), 10, []int64{1}},
		{"stable on ties", scoredWith(0.1, 0.0, 0.1, 0.1), 10, []int64{2, 1, 3, 4}},
		{"empty", nil, 10, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.input, tt.k)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Rank() returned %d items, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].College.ID != id {
					t.Errorf("Rank()[%d].ID = %d, want %d", i, got[i].College.ID, id)
				}
			}
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := scoredWith(0.9, 0.1)
	_ = Rank(input, 1)

	if input[0].College.ID != 1 || input[1].College.ID != 2 {
		t.Errorf("Rank() mutated input: %+v", input)
	}
}
