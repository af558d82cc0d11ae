// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package recommend

import (
	"sort"

	"github.com/bpaksoy/capstone/internal/models"
)

// FilterCandidates keeps colleges in one of the profile's states whose id is
// not excluded, orders them by ascending id and returns at most limit of
// them. Duplicate ids are collapsed. The input slice is not modified.
//
// When more than limit colleges qualify, the highest ids are dropped. This
// trades recall for a bounded scoring cost and is deterministic.
func FilterCandidates(profile *TasteProfile, exclude map[int64]struct{}, candidates []models.College, limit int) []models.College {
	if profile == nil || len(candidates) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(candidates))
	filtered := make([]models.College, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if !profile.HasState(c.State) {
			continue
		}
		if _, excluded := exclude[c.ID]; excluded {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		filtered = append(filtered, *c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ID < filtered[j].ID
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// buildExclusionSet merges the bookmark ids with caller-supplied exclusions.
func buildExclusionSet(bookmarks []models.College, excludeIDs []int64) map[int64]struct{} {
	exclude := make(map[int64]struct{}, len(bookmarks)+len(excludeIDs))
	for i := range bookmarks {
		exclude[bookmarks[i].ID] = struct{}{}
	}
	for _, id := range excludeIDs {
		exclude[id] = struct{}{}
	}
	return exclude
}

// sortedIDs returns the set's members in ascending order.
func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
