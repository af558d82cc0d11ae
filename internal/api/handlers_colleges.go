// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"errors"
	"net/http"

	"github.com/bpaksoy/capstone/internal/catalog"
	"github.com/bpaksoy/capstone/internal/database"
	"github.com/bpaksoy/capstone/internal/validation"
)

// GetCollege handles GET /api/v1/colleges/{id}. The in-memory index is
// consulted first; the database covers colleges added since the last refresh.
func (h *Handler) GetCollege(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := parseIDParam(r, "id")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	if college, ok := h.index.Get(id); ok {
		rw.Success(college)
		return
	}

	college, err := h.store.GetCollege(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		rw.NotFound("college not found")
		return
	}
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Success(college)
}

// Autocomplete handles GET /api/v1/colleges/autocomplete?prefix=&limit=.
// Matching ignores case and accents.
func (h *Handler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := validation.AutocompleteRequest{
		Prefix: r.URL.Query().Get("prefix"),
		Limit:  getIntParam(r, "limit", catalog.DefaultAutocompleteLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr)
		return
	}

	colleges := h.index.Autocomplete(req.Prefix, req.Limit)
	rw.SuccessWithPagination(colleges, &PaginationMeta{
		Count:   len(colleges),
		Limit:   req.Limit,
		HasMore: len(colleges) == req.Limit,
	})
}
