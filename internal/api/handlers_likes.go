// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bpaksoy/capstone/internal/models"
	"github.com/bpaksoy/capstone/internal/validation"
)

// LikeResponse reports a like after a change or count.
type LikeResponse struct {
	Target  models.Target `json:"target"`
	Changed bool          `json:"changed"`
	Count   int           `json:"count"`
}

// likeTarget validates req and converts it to a Target.
func likeTarget(req *validation.LikeRequest) (models.Target, *models.APIError) {
	if apiErr := validateRequest(req); apiErr != nil {
		return models.Target{}, apiErr
	}
	kind, err := models.ParseTargetKind(req.TargetKind)
	if err != nil {
		return models.Target{}, &models.APIError{Code: ErrCodeValidationFailed, Message: err.Error()}
	}
	return models.Target{Kind: kind, ID: req.TargetID}, nil
}

// likeRequestFromPath reads /likes/{kind}/{id}. A malformed id becomes 0 so
// validation reports it.
func likeRequestFromPath(r *http.Request) validation.LikeRequest {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		id = 0
	}
	return validation.LikeRequest{TargetKind: chi.URLParam(r, "kind"), TargetID: id}
}

// AddLike handles POST /api/v1/likes. Liking twice is not an error; changed
// is false on the second call.
func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := callerID(r)
	if !ok {
		rw.Unauthorized("authentication required")
		return
	}

	var req validation.LikeRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	target, apiErr := likeTarget(&req)
	if apiErr != nil {
		rw.ValidationError(apiErr)
		return
	}

	ctx := r.Context()
	added, err := h.store.AddLike(ctx, userID, target)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	count, err := h.store.CountLikes(ctx, target)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	resp := LikeResponse{Target: target, Changed: added, Count: count}
	if added {
		rw.Created(resp)
		return
	}
	rw.Success(resp)
}

// RemoveLike handles DELETE /api/v1/likes/{kind}/{id}.
func (h *Handler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := callerID(r)
	if !ok {
		rw.Unauthorized("authentication required")
		return
	}

	req := likeRequestFromPath(r)
	target, apiErr := likeTarget(&req)
	if apiErr != nil {
		rw.ValidationError(apiErr)
		return
	}

	ctx := r.Context()
	removed, err := h.store.RemoveLike(ctx, userID, target)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	count, err := h.store.CountLikes(ctx, target)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Success(LikeResponse{Target: target, Changed: removed, Count: count})
}

// CountLikes handles GET /api/v1/likes/{kind}/{id}.
func (h *Handler) CountLikes(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := likeRequestFromPath(r)
	target, apiErr := likeTarget(&req)
	if apiErr != nil {
		rw.ValidationError(apiErr)
		return
	}

	count, err := h.store.CountLikes(r.Context(), target)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Success(LikeResponse{Target: target, Count: count})
}
