// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/bpaksoy/capstone/internal/models"
)

// Suggestion is the outcome of a fuzzy lookup.
type Suggestion struct {
	College models.College `json:"college"`

	// Ratio is the edit-distance similarity in [0, 1].
	Ratio float64 `json:"ratio"`

	// Score is Ratio plus any prefix bonus.
	Score float64 `json:"score"`
}

// Similarity returns 1 - levenshtein(a, b) / max(len(a), len(b)) over runes.
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
}

// fuzzyScorer scores catalog names against one folded query.
type fuzzyScorer struct {
	query  string
	prefix string
	bonus  float64
}

func newFuzzyScorer(query string, cfg *Config) fuzzyScorer {
	folded := Fold(query)
	prefix := folded
	if r := []rune(folded); len(r) > cfg.PrefixLength {
		prefix = string(r[:cfg.PrefixLength])
	}
	return fuzzyScorer{query: folded, prefix: prefix, bonus: cfg.PrefixBonus}
}

func (f fuzzyScorer) score(name string) (ratio, score float64) {
	folded := Fold(name)
	ratio = Similarity(f.query, folded)
	score = ratio
	if f.prefix != "" && hasWordPrefix(folded, f.prefix) {
		score += f.bonus
	}
	return ratio, score
}

func hasWordPrefix(name, prefix string) bool {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

// bestSuggestion returns the highest scoring college. Ties keep the earlier
// college. ok is false when nothing scores above threshold.
func bestSuggestion(query string, colleges []models.College, cfg *Config) (Suggestion, bool) {
	scorer := newFuzzyScorer(query, cfg)
	if scorer.query == "" {
		return Suggestion{}, false
	}

	var best Suggestion
	found := false
	for i := range colleges {
		ratio, score := scorer.score(colleges[i].Name)
		if !found || score > best.Score {
			best = Suggestion{College: colleges[i], Ratio: ratio, Score: score}
			found = true
		}
	}

	if !found || best.Score <= cfg.FuzzyThreshold {
		return Suggestion{}, false
	}
	return best, true
}
