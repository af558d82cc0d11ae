// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/bpaksoy/capstone/internal/database"
	"github.com/bpaksoy/capstone/internal/events"
	"github.com/bpaksoy/capstone/internal/logging"
)

// BookmarkToggleResponse reports the bookmark state after a toggle.
type BookmarkToggleResponse struct {
	CollegeID  int64 `json:"college_id"`
	Bookmarked bool  `json:"bookmarked"`
}

// ListBookmarks handles GET /api/v1/bookmarks.
func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := callerID(r)
	if !ok {
		rw.Unauthorized("authentication required")
		return
	}

	colleges, err := h.store.BookmarkedColleges(r.Context(), userID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.SuccessWithPagination(colleges, &PaginationMeta{
		Total: int64(len(colleges)),
		Count: len(colleges),
	})
}

// ToggleBookmark handles POST /api/v1/bookmarks/{id}/toggle. It publishes a
// bookmarks.changed event; a publish failure is logged and does not fail the
// request because the bookmark is already committed.
func (h *Handler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := callerID(r)
	if !ok {
		rw.Unauthorized("authentication required")
		return
	}
	collegeID, err := parseIDParam(r, "id")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	ctx := r.Context()
	bookmarked, err := h.store.ToggleBookmark(ctx, userID, collegeID)
	if errors.Is(err, database.ErrNotFound) {
		rw.NotFound("college not found")
		return
	}
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	if h.publisher != nil {
		event := events.BookmarkChanged{
			UserID:     userID,
			CollegeID:  collegeID,
			Bookmarked: bookmarked,
			Timestamp:  time.Now().UTC(),
		}
		if err := h.publisher.Publish(ctx, event); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Int64("college_id", collegeID).Msg("Failed to publish bookmark event")
		}
	}

	rw.Success(BookmarkToggleResponse{CollegeID: collegeID, Bookmarked: bookmarked})
}
