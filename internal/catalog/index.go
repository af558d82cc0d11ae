// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/bpaksoy/capstone/internal/cache"
	"github.com/bpaksoy/capstone/internal/metrics"
	"github.com/bpaksoy/capstone/internal/models"
	"github.com/bpaksoy/capstone/internal/resolve"
)

const (
	refreshKey     = "refresh"
	refreshTimeout = 2 * time.Minute

	// DefaultAutocompleteLimit applies when the caller passes limit <= 0.
	DefaultAutocompleteLimit = 10
)

// ErrNoLoader is returned by Refresh when the index has nothing to load from.
var ErrNoLoader = errors.New("catalog index has no loader")

// Loader returns the full catalog.
type Loader func(ctx context.Context) ([]models.College, error)

// snapshot is immutable once published.
type snapshot struct {
	colleges   []models.College
	byID       map[int64]int
	names      *cache.Trie
	generation uint64
	builtAt    time.Time
}

// Index serves catalog reads from the latest published snapshot.
type Index struct {
	load    Loader
	current atomic.Pointer[snapshot]
	group   singleflight.Group
	logger  zerolog.Logger

	// publishMu orders generation assignment with the store so published
	// generations never go backwards.
	publishMu  sync.Mutex
	generation uint64
}

// NewIndex creates an empty index. Call Refresh to populate it.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewIndex(load Loader, logger zerolog.Logger) *Index {
	idx := &Index{
		load:   load,
		logger: logger.With().Str("component", "catalog_index").Logger(),
	}
	idx.current.Store(buildSnapshot(nil, 0))
	return idx
}

// Refresh loads the catalog and swaps in a new snapshot. It returns the new
// catalog size. Concurrent callers share one load; the load is detached from
// the first caller's cancellation so a departing caller cannot fail the rest.
func (i *Index) Refresh(ctx context.Context) (int, error) {
	if i.load == nil {
		return 0, ErrNoLoader
	}

	v, err, shared := i.group.Do(refreshKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		start := time.Now()
		colleges, err := i.load(loadCtx)
		if err != nil {
			metrics.RecordCatalogRefresh(0, err)
			return 0, fmt.Errorf("failed to load catalog: %w", err)
		}

		snap := i.publish(colleges)
		metrics.RecordCatalogRefresh(len(snap.colleges), nil)

		i.logger.Info().
			Int("colleges", len(snap.colleges)).
			Uint64("generation", snap.generation).
			Dur("duration", time.Since(start)).
			Msg("Catalog index refreshed")
		return len(snap.colleges), nil
	})
	if err != nil {
		i.logger.Warn().Err(err).Msg("Catalog index refresh failed, keeping previous snapshot")
		return 0, err
	}
	if shared {
		i.logger.Debug().Msg("Catalog refresh shared with concurrent caller")
	}
	return v.(int), nil
}

// Load replaces the snapshot from an in-memory catalog, bypassing the loader.
func (i *Index) Load(colleges []models.College) int {
	snap := i.publish(colleges)
	metrics.RecordCatalogRefresh(len(snap.colleges), nil)
	return len(snap.colleges)
}

// publish builds a snapshot outside the lock, then stamps it with the next
// generation and stores it as one step.
func (i *Index) publish(colleges []models.College) *snapshot {
	snap := buildSnapshot(colleges, 0)

	i.publishMu.Lock()
	defer i.publishMu.Unlock()
	i.generation++
	snap.generation = i.generation
	i.current.Store(snap)
	return snap
}

// buildSnapshot copies colleges, drops duplicate and non-positive ids
// (first row wins), sorts by id and indexes folded names.
func buildSnapshot(colleges []models.College, generation uint64) *snapshot {
	list := make([]models.College, 0, len(colleges))
	seen := make(map[int64]struct{}, len(colleges))
	for _, c := range colleges {
		if c.ID <= 0 {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		list = append(list, c)
	}
	sort.SliceStable(list, func(a, b int) bool { return list[a].ID < list[b].ID })

	byID := make(map[int64]int, len(list))
	groups := make(map[string][]int64)
	order := make([]string, 0, len(list))
	for pos, c := range list {
		byID[c.ID] = pos
		key := resolve.Fold(c.Name)
		if key == "" {
			continue
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], c.ID)
	}

	names := cache.NewTrie()
	for _, key := range order {
		names.InsertWithData(key, groups[key])
	}

	return &snapshot{
		colleges:   list,
		byID:       byID,
		names:      names,
		generation: generation,
		builtAt:    time.Now(),
	}
}

// Colleges returns the current catalog ordered by id. The slice is shared
// and must not be modified. It satisfies resolve.NameSource.
func (i *Index) Colleges() []models.College {
	return i.current.Load().colleges
}

// Get returns a college by id.
func (i *Index) Get(id int64) (models.College, bool) {
	snap := i.current.Load()
	pos, ok := snap.byID[id]
	if !ok {
		return models.College{}, false
	}
	return snap.colleges[pos], true
}

// Autocomplete returns colleges whose folded name starts with the folded
// prefix, ordered alphabetically by name then id.
func (i *Index) Autocomplete(prefix string, limit int) []models.College {
	if limit <= 0 {
		limit = DefaultAutocompleteLimit
	}
	key := resolve.Fold(prefix)
	if key == "" {
		return []models.College{}
	}

	snap := i.current.Load()
	results := snap.names.AutocompleteWithLimit(key, limit)

	out := make([]models.College, 0, len(results))
	for _, r := range results {
		ids, _ := r.Data.([]int64)
		for _, id := range ids {
			if len(out) == limit {
				return out
			}
			if pos, ok := snap.byID[id]; ok {
				out = append(out, snap.colleges[pos])
			}
		}
	}
	return out
}

// Size returns the number of colleges in the current snapshot.
func (i *Index) Size() int {
	return len(i.current.Load().colleges)
}

// Generation increases by one with every published snapshot. Zero means
// the index has never been populated.
func (i *Index) Generation() uint64 {
	return i.current.Load().generation
}

// BuiltAt reports when the current snapshot was built.
func (i *Index) BuiltAt() time.Time {
	return i.current.Load().builtAt
}
