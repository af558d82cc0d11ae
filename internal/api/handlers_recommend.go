// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"net/http"

	"github.com/bpaksoy/capstone/internal/catalog"
	"github.com/bpaksoy/capstone/internal/logging"
	"github.com/bpaksoy/capstone/internal/metrics"
	"github.com/bpaksoy/capstone/internal/validation"
)

// Recommendations handles GET /api/v1/recommendations.
//
// The caller's bookmarks form the taste profile; candidates come from the
// breaker-guarded catalog. An optional exclude=1,2,3 parameter removes ids
// beyond the bookmarks. A user without bookmarks gets an empty list with
// status "no_profile", not an error.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := callerID(r)
	if !ok {
		rw.Unauthorized("authentication required")
		return
	}

	exclude, err := parseIDList(r.URL.Query().Get("exclude"))
	if err != nil {
		rw.BadRequest("invalid exclude: " + err.Error())
		return
	}
	req := validation.RecommendRequest{Exclude: exclude}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr)
		return
	}

	ctx := r.Context()
	bookmarks, err := h.store.BookmarkedColleges(ctx, userID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	result, err := h.engine.Recommend(ctx, bookmarks, req.Exclude, h.catalog.FetchCandidates)
	if err != nil {
		metrics.RecordRecommendation("error", 0)
		if catalog.Unavailable(err) {
			rw.ServiceUnavailable("catalog temporarily unavailable")
			return
		}
		logging.Ctx(ctx).Error().Err(err).Msg("Recommendation failed")
		rw.InternalError("failed to compute recommendations")
		return
	}

	metrics.RecordRecommendation(string(result.Status), result.TotalCandidates)
	rw.Success(result)
}
