// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"Tell me about MIT's tuition!", []string{"Tell", "me", "about", "MIT", "s", "tuition"}},
		{"UC-Berkeley vs. UCLA (2024)", []string{"UC", "Berkeley", "vs", "UCLA"}},
		{"São Paulo", []string{"São", "Paulo"}},
		{"123 456", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeepToken(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	tests := []struct {
		token string
		want  bool
	}{
		{"MIT", true},
		{"UPenn", true},
		{"caltech", true},
		{"mit", false},
		{"UC", true},
		{"A", false},
		{"Duke", false},
		{"Stanford", true},
		{"tuition", false},
		{"University", false},
		{"ABOUT", false},
		{"Harvad", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := KeepToken(tt.token, cfg); got != tt.want {
				t.Errorf("KeepToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  string
	}{
		{"MIT", "Massachusetts Institute of Technology"},
		{"UPenn", "University of Pennsylvania"},
		{"Caltech", "California Institute of Technology"},
		{"Mit", "Mit"},
		{"Stanford", "Stanford"},
	}

	for _, tt := range tests {
		if got := Expand(tt.token); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestTerms(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	t.Run("acronym expansion", func(t *testing.T) {
		got := Terms("Tell me about MIT tuition", cfg)
		want := []Term{{Text: "Massachusetts Institute of Technology", Phrase: true}}
		if !slices.Equal(got, want) {
			t.Errorf("Terms() = %+v, want %+v", got, want)
		}
	})

	t.Run("mixed terms keep order", func(t *testing.T) {
		got := Terms("Compare Stanford and NYU", cfg)
		want := []Term{
			{Text: "Stanford"},
			{Text: "New York University", Phrase: true},
		}
		if !slices.Equal(got, want) {
			t.Errorf("Terms() = %+v, want %+v", got, want)
		}
	})

	t.Run("deduplicates after folding", func(t *testing.T) {
		got := Terms("Stanford STANFORD stanford", cfg)
		if len(got) != 1 || got[0].Text != "Stanford" {
			t.Errorf("Terms() = %+v, want single Stanford", got)
		}
	})

	t.Run("nothing kept", func(t *testing.T) {
		if got := Terms("tell me about the tuition", cfg); len(got) != 0 {
			t.Errorf("Terms() = %+v, want none", got)
		}
	})
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Universidade de São Paulo", "universidade de sao paulo"},
		{"  École Polytechnique ", "ecole polytechnique"},
		{"MIT", "mit"},
	}
	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
