// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package cache

import (
	"sync"
	"testing"
)

func TestTrie_BasicOperations(t *testing.T) {
	t.Parallel()

	trie := NewTrie()

	if !trie.Insert("Stanford University") {
		t.Error("first Insert should return true")
	}
	if trie.Insert("stanford university") {
		t.Error("case-insensitive duplicate Insert should return false")
	}
	if trie.Size() != 1 {
		t.Errorf("Size() = %d, want 1", trie.Size())
	}

	if _, found := trie.Search("STANFORD UNIVERSITY"); !found {
		t.Error("Search() should find case-insensitive match")
	}
	if _, found := trie.Search("Stanford"); found {
		t.Error("Search() should not match a prefix")
	}
}

func TestTrie_CaseSensitive(t *testing.T) {
	t.Parallel()

	trie := NewTrieWithOptions(true, 5)
	trie.Insert("Yale")

	if _, found := trie.Search("yale"); found {
		t.Error("case-sensitive trie matched different case")
	}
	if _, found := trie.Search("Yale"); !found {
		t.Error("case-sensitive trie missed exact key")
	}
}

func TestTrie_InsertWithData(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	trie.InsertWithData("Brown University", []int64{217156})

	data, found := trie.Search("brown university")
	if !found {
		t.Fatal("Search() did not find inserted key")
	}
	ids, ok := data.([]int64)
	if !ok || len(ids) != 1 || ids[0] != 217156 {
		t.Errorf("data = %v, want [217156]", data)
	}
}

func TestTrie_HasPrefix(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	if trie.HasPrefix("") {
		t.Error("empty trie HasPrefix(\"\") should be false")
	}

	trie.Insert("Cornell University")

	tests := []struct {
		prefix string
		want   bool
	}{
		{"", true},
		{"cor", true},
		{"CORNELL", true},
		{"columbia", false},
	}
	for _, tt := range tests {
		if got := trie.HasPrefix(tt.prefix); got != tt.want {
			t.Errorf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestTrie_AutocompleteWithLimit(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	for _, name := range []string{
		"University of Virginia",
		"University of Vermont",
		"University of Utah",
		"Utah State University",
	} {
		trie.Insert(name)
	}

	results := trie.AutocompleteWithLimit("university of v", 10)
	if len(results) != 2 {
		t.Fatalf("Autocomplete() = %d results, want 2", len(results))
	}
	if results[0].Value != "University of Vermont" || results[1].Value != "University of Virginia" {
		t.Errorf("Autocomplete() order = %q, %q", results[0].Value, results[1].Value)
	}

	if got := trie.AutocompleteWithLimit("university", 1); len(got) != 1 {
		t.Errorf("limit 1 returned %d results", len(got))
	}
	if got := trie.AutocompleteWithLimit("harvard", 10); got != nil {
		t.Errorf("missing prefix returned %v, want nil", got)
	}
}

func TestTrie_AutocompleteRanking(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	trie.Insert("Alpha College")
	trie.Insert("Alpine College")
	trie.Insert("Alpine College")

	results := trie.Autocomplete("alp")
	if len(results) != 2 {
		t.Fatalf("Autocomplete() = %d results, want 2", len(results))
	}
	if results[0].Value != "Alpine College" || results[0].Count != 2 {
		t.Errorf("most inserted should rank first, got %+v", results[0])
	}
}

func TestTrie_ClearAndGetAll(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	trie.Insert("b")
	trie.Insert("a")

	all := trie.GetAll()
	if len(all) != 2 || all[0].Value != "a" {
		t.Errorf("GetAll() = %+v, want [a b]", all)
	}

	trie.Clear()
	if trie.Size() != 0 || len(trie.GetAll()) != 0 {
		t.Error("Clear() should empty the trie")
	}
}

func TestTrie_EmptyString(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	if trie.Insert("") {
		t.Error("Insert(\"\") should return false")
	}
	if _, found := trie.Search(""); found {
		t.Error("Search(\"\") should return false")
	}
}

func TestTrie_Concurrent(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	var wg sync.WaitGroup

	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 50 {
				trie.Insert(string(rune('a'+n)) + string(rune('a'+j%26)))
				_ = trie.Autocomplete(string(rune('a' + n)))
			}
		}(i)
	}
	wg.Wait()

	if trie.Size() != 10*26 {
		t.Errorf("Size() = %d, want %d", trie.Size(), 10*26)
	}
}
