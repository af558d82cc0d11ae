// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

/*
Package resolve maps free-text mentions of colleges to catalog records.

# Pipeline

	text ─▶ Tokenize ─▶ KeepToken ─▶ Expand ─▶ Terms
	                                            │
	           NameSearcher(terms) ◀────────────┘
	                  │
	                  ▶ Matcher.Count ─▶ stable sort ─▶ top MaxMatches
	                                                       │ (none)
	                                                       ▶ Suggest (fuzzy)

Tokens are alphabetic runs. Stop words are dropped, then only all-uppercase
acronyms (two letters or more) and longer tokens (five letters or more)
survive. Known acronyms expand to the institution's full name, which makes
them phrase terms.

A catalog name satisfies a phrase term when it contains the phrase, and a
single-word term when the word appears whole. Both sides are compared after
accent folding and lowercasing, so "São" and "SAO" are the same text.

# Fuzzy Fallback

When no record satisfies any term and at most three terms were kept, the kept
terms joined by spaces are compared against every catalog name supplied by the
NameSource. Filler words never reach the comparison, and text with no kept
terms resolves to nothing:

	score = 1 - levenshtein(query, name) / max(len(query), len(name))
	      + PrefixBonus if a word of name starts with the query's first
	        PrefixLength letters

The best score is accepted only above FuzzyThreshold. An empty result is not
an error; only blank input returns ErrInvalidQuery.

# Thread Safety

Resolver holds no per-request state and is safe for concurrent use.
*/
package resolve
