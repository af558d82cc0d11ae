// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import (
	"regexp"

	"github.com/bpaksoy/capstone/internal/cache"
)

// Matcher counts how many terms a catalog name satisfies. Phrase terms are
// compiled into one Aho-Corasick automaton; word terms each get a
// word-boundary regexp. A Matcher is immutable once built.
type Matcher struct {
	phrases *cache.AhoCorasick
	words   []*regexp.Regexp
}

// NewMatcher compiles terms into a Matcher.
func NewMatcher(terms []Term) *Matcher {
	m := &Matcher{phrases: cache.NewAhoCorasick()}
	for i, term := range terms {
		folded := Fold(term.Text)
		if term.Phrase {
			m.phrases.AddPattern(folded, i)
			continue
		}
		m.words = append(m.words, regexp.MustCompile(`\b`+regexp.QuoteMeta(folded)+`\b`))
	}
	m.phrases.Build()
	return m
}

// Count returns the number of terms satisfied by name.
func (m *Matcher) Count(name string) int {
	folded := Fold(name)

	count := len(m.phrases.MatchedPatterns(folded))
	for _, re := range m.words {
		if re.MatchString(folded) {
			count++
		}
	}
	return count
}

// Len returns the number of compiled terms.
func (m *Matcher) Len() int {
	return m.phrases.PatternCount() + len(m.words)
}
