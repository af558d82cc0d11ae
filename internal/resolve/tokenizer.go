// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Term is one search term derived from the query.
type Term struct {
	// Text is the expanded term as written (acronyms become full names).
	Text string `json:"text"`

	// Phrase is true for multi-word terms, which match as substrings.
	Phrase bool `json:"phrase"`
}

// Tokenize splits text into runs of letters.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// KeepToken reports whether a token is specific enough to search for.
// Known acronyms are always kept. Otherwise stop words are dropped, and a
// token survives if it is an all-uppercase acronym of at least
// MinAcronymLength letters or any token of at least MinTokenLength letters.
func KeepToken(token string, cfg *Config) bool {
	if _, ok := LookupAcronym(token); ok {
		return true
	}
	if IsStopWord(token) {
		return false
	}

	n := utf8.RuneCountInString(token)
	if isAllUpper(token) && n >= cfg.MinAcronymLength {
		return true
	}
	return n >= cfg.MinTokenLength
}

// Terms tokenizes text and returns the kept, expanded terms. Duplicates
// (after folding) are removed; first occurrence order is kept.
func Terms(text string, cfg *Config) []Term {
	tokens := Tokenize(text)
	terms := make([]Term, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))

	for _, tok := range tokens {
		if !KeepToken(tok, cfg) {
			continue
		}
		expanded := Expand(tok)
		key := Fold(expanded)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		terms = append(terms, Term{
			Text:   expanded,
			Phrase: strings.Contains(expanded, " "),
		})
	}
	return terms
}

func isAllUpper(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
