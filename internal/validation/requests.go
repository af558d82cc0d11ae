// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package validation

// ResolveRequest is the body of POST /api/v1/resolve.
type ResolveRequest struct {
	Text string `json:"text" validate:"required,notblank,max=1000"`
}

// SuggestRequest carries the query for GET /api/v1/suggest.
type SuggestRequest struct {
	Query string `json:"q" validate:"required,notblank,max=200"`
}

// AutocompleteRequest carries the name prefix for college autocomplete.
type AutocompleteRequest struct {
	Prefix string `json:"prefix" validate:"required,notblank,max=100"`
	Limit  int    `json:"limit" validate:"min=1,max=50"`
}

// RecommendRequest holds optional overrides for GET /api/v1/recommendations.
type RecommendRequest struct {
	Exclude []int64 `json:"exclude" validate:"max=500,dive,gt=0"`
}

// LikeRequest is the body of POST/DELETE /api/v1/likes.
type LikeRequest struct {
	TargetKind string `json:"target_kind" validate:"required,targetkind"`
	TargetID   int64  `json:"target_id" validate:"gt=0"`
}

// TokenRequest describes a token issued by the CLI.
type TokenRequest struct {
	UserID   int64  `json:"user_id" validate:"gte=0"`
	Username string `json:"username" validate:"omitempty,max=64"`
}
