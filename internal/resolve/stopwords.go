// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package resolve

import "strings"

// stopWords holds common English words and college-domain filler. Entries
// are lowercase.
var stopWords = toSet([]string{
	// English
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before", "being",
	"below", "best", "between", "both", "but", "by", "can", "could", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from", "further",
	"get", "give", "good", "had", "has", "have", "having", "he", "her", "here",
	"hers", "him", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"just", "know", "like", "looking", "me", "more", "most", "my", "need", "no",
	"nor", "not", "now", "of", "off", "on", "once", "only", "or", "other",
	"our", "out", "over", "own", "please", "same", "she", "should", "show",
	"so", "some", "such", "tell", "than", "thanks", "that", "the", "their",
	"them", "then", "there", "these", "they", "thing", "things", "think",
	"this", "those", "through", "to", "too", "under", "until", "up", "very",
	"want", "was", "we", "were", "what", "when", "where", "which", "while",
	"who", "whom", "why", "will", "with", "would", "you", "your", "yours",

	// Domain filler
	"academic", "academics", "admission", "admissions", "apply", "application",
	"applications", "campus", "campuses", "college", "colleges", "compare",
	"cost", "costs", "course", "courses", "degree", "degrees", "enrollment",
	"information", "institute", "major", "majors", "program", "programs",
	"ranking", "rankings", "school", "schools", "scholarship", "scholarships",
	"student", "students", "study", "tuition", "universities", "university",
})

// IsStopWord reports whether token is a stop word, ignoring case.
func IsStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
