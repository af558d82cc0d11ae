// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package cache

import (
	"strings"
	"sync"
)

// AhoCorasick implements the Aho-Corasick string matching algorithm.
// It finds all occurrences of multiple patterns in a text in
// O(n + m + z) time, where:
//   - n = length of text
//   - m = total length of all patterns
//   - z = number of matches
//
// Example:
//
//	ac := NewAhoCorasick()
//	ac.AddPattern("institute of technology", 0)
//	ac.AddPattern("state university", 1)
//	ac.Build()
//
//	matched := ac.MatchedPatterns("California Institute of Technology")
//	// matched contains 0
type AhoCorasick struct {
	mu            sync.RWMutex
	root          *acNode
	patterns      []Pattern
	built         bool
	caseSensitive bool
}

// acNode represents a node in the Aho-Corasick automaton.
type acNode struct {
	children map[rune]*acNode
	failure  *acNode // Failure link for when match fails
	output   []int   // Indices of patterns that end at this node
	depth    int     // Depth from root, in runes
}

// Pattern represents a search pattern with associated data.
type Pattern struct {
	Text string // The pattern text
	Data any    // Optional associated data (e.g., term index)
}

// Match represents a pattern match in the text.
type Match struct {
	Index    int    // Index of the pattern in insertion order
	Pattern  string // The matched pattern
	Data     any    // Associated data from the pattern
	Position int    // Start byte offset in the (case-folded) text
}

// NewAhoCorasick creates a new Aho-Corasick automaton.
// By default, matching is case-insensitive.
func NewAhoCorasick() *AhoCorasick {
	return &AhoCorasick{
		root:          newACNode(0),
		caseSensitive: false,
	}
}

// NewAhoCorasickCaseSensitive creates a case-sensitive automaton.
func NewAhoCorasickCaseSensitive() *AhoCorasick {
	return &AhoCorasick{
		root:          newACNode(0),
		caseSensitive: true,
	}
}

func newACNode(depth int) *acNode {
	return &acNode{
		children: make(map[rune]*acNode),
		depth:    depth,
	}
}

func (ac *AhoCorasick) fold(s string) string {
	if ac.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// AddPattern adds a pattern to the automaton. Empty patterns are ignored.
// Adding after Build marks the automaton for rebuild.
func (ac *AhoCorasick) AddPattern(pattern string, data any) {
	if pattern == "" {
		return
	}

	ac.mu.Lock()
	defer ac.mu.Unlock()

	ac.built = false
	ac.patterns = append(ac.patterns, Pattern{Text: pattern, Data: data})
}

// AddPatterns adds multiple patterns at once.
func (ac *AhoCorasick) AddPatterns(patterns []string, data any) {
	for _, p := range patterns {
		ac.AddPattern(p, data)
	}
}

// Build constructs the automaton. Must be called after adding patterns
// and before searching.
func (ac *AhoCorasick) Build() {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	if ac.built {
		return
	}

	ac.root = newACNode(0)
	for i, p := range ac.patterns {
		ac.insertPattern(i, p.Text)
	}
	ac.buildFailureLinks()

	ac.built = true
}

func (ac *AhoCorasick) insertPattern(index int, pattern string) {
	node := ac.root
	for _, ch := range ac.fold(pattern) {
		if node.children[ch] == nil {
			node.children[ch] = newACNode(node.depth + 1)
		}
		node = node.children[ch]
	}
	node.output = append(node.output, index)
}

// buildFailureLinks builds failure links using BFS.
func (ac *AhoCorasick) buildFailureLinks() {
	queue := make([]*acNode, 0, len(ac.root.children))
	for _, child := range ac.root.children {
		child.failure = ac.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			// Longest proper suffix that is also a trie path
			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}

			if fail == nil {
				child.failure = ac.root
			} else {
				child.failure = fail.children[ch]
				child.output = append(child.output, child.failure.output...)
			}
		}
	}
}

// scan walks text through the automaton and calls emit for every pattern
// ending at each position. Scanning stops when emit returns false.
// Callers must hold the read lock.
func (ac *AhoCorasick) scan(text string, emit func(patternIdx, end int) bool) {
	node := ac.root
	for i, ch := range ac.fold(text) {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = ac.root
			continue
		}
		node = node.children[ch]

		end := i + len(string(ch))
		for _, idx := range node.output {
			if !emit(idx, end) {
				return
			}
		}
	}
}

// Search finds all pattern matches in the text.
func (ac *AhoCorasick) Search(text string) []Match {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	if !ac.built || len(ac.patterns) == 0 {
		return nil
	}

	var matches []Match
	ac.scan(text, func(idx, end int) bool {
		p := ac.patterns[idx]
		matches = append(matches, Match{
			Index:    idx,
			Pattern:  p.Text,
			Data:     p.Data,
			Position: end - len(ac.fold(p.Text)),
		})
		return true
	})
	return matches
}

// MatchedPatterns returns the set of pattern indices occurring anywhere in
// text. Each index appears once regardless of how often it matched.
func (ac *AhoCorasick) MatchedPatterns(text string) map[int]struct{} {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	matched := make(map[int]struct{})
	if !ac.built || len(ac.patterns) == 0 {
		return matched
	}

	ac.scan(text, func(idx, _ int) bool {
		matched[idx] = struct{}{}
		return len(matched) < len(ac.patterns)
	})
	return matched
}

// Contains checks if any pattern matches in the text.
func (ac *AhoCorasick) Contains(text string) bool {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	if !ac.built || len(ac.patterns) == 0 {
		return false
	}

	found := false
	ac.scan(text, func(int, int) bool {
		found = true
		return false
	})
	return found
}

// PatternCount returns the number of patterns in the automaton.
func (ac *AhoCorasick) PatternCount() int {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return len(ac.patterns)
}

// Clear removes all patterns and resets the automaton.
func (ac *AhoCorasick) Clear() {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	ac.root = newACNode(0)
	ac.patterns = nil
	ac.built = false
}
