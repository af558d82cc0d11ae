// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package events

import "time"

const (
	TopicCatalogUpdated   = "catalog.updated"
	TopicBookmarksChanged = "bookmarks.changed"
)

// CatalogUpdated announces that catalog rows were written.
type CatalogUpdated struct {
	Source    string    `json:"source"` // "import", "api"
	Written   int       `json:"written"`
	Timestamp time.Time `json:"timestamp"`
}

// BookmarkChanged announces a bookmark toggle.
type BookmarkChanged struct {
	UserID     int64     `json:"user_id"`
	CollegeID  int64     `json:"college_id"`
	Bookmarked bool      `json:"bookmarked"`
	Timestamp  time.Time `json:"timestamp"`
}

// topicOf maps payload types to their topic.
func topicOf(payload any) (string, bool) {
	switch payload.(type) {
	case CatalogUpdated, *CatalogUpdated:
		return TopicCatalogUpdated, true
	case BookmarkChanged, *BookmarkChanged:
		return TopicBookmarksChanged, true
	default:
		return "", false
	}
}
