// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/bpaksoy/capstone/internal/cache"
	"github.com/bpaksoy/capstone/internal/catalog"
	"github.com/bpaksoy/capstone/internal/config"
	"github.com/bpaksoy/capstone/internal/events"
	"github.com/bpaksoy/capstone/internal/models"
	"github.com/bpaksoy/capstone/internal/recommend"
	"github.com/bpaksoy/capstone/internal/resolve"
)

// Store is the per-user read/write path. *database.DB satisfies it.
type Store interface {
	Ping(ctx context.Context) error
	GetCollege(ctx context.Context, id int64) (*models.College, error)
	BookmarkedColleges(ctx context.Context, userID int64) ([]models.College, error)
	ToggleBookmark(ctx context.Context, userID, collegeID int64) (bool, error)
	AddLike(ctx context.Context, userID int64, target models.Target) (bool, error)
	RemoveLike(ctx context.Context, userID int64, target models.Target) (bool, error)
	CountLikes(ctx context.Context, target models.Target) (int, error)
}

// Deps are the collaborators of Handler. Publisher is optional.
type Deps struct {
	Config    *config.Config
	Store     Store
	Catalog   *catalog.BreakerStore
	Index     *catalog.Index
	Engine    *recommend.Engine
	Resolver  *resolve.Resolver
	Publisher events.Publisher
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: health probes and stats
//   - handlers_recommend.go: recommendations
//   - handlers_colleges.go: college lookup and autocomplete
//   - handlers_resolve.go: mention resolution and suggestions
//   - handlers_bookmarks.go: bookmarks
//   - handlers_likes.go: likes
type Handler struct {
	config    *config.Config
	store     Store
	catalog   *catalog.BreakerStore
	index     *catalog.Index
	engine    *recommend.Engine
	resolver  *resolve.Resolver
	publisher events.Publisher

	// resolved caches resolve results keyed by index generation and text.
	resolved *cache.LRU[[]resolve.NameMatch]

	startTime time.Time
}

// NewHandler creates the API handler. Every dependency except Publisher is
// required.
func NewHandler(deps Deps) (*Handler, error) {
	switch {
	case deps.Config == nil:
		return nil, fmt.Errorf("%w: config", ErrMissingDependency)
	case deps.Store == nil:
		return nil, fmt.Errorf("%w: store", ErrMissingDependency)
	case deps.Catalog == nil:
		return nil, fmt.Errorf("%w: catalog", ErrMissingDependency)
	case deps.Index == nil:
		return nil, fmt.Errorf("%w: index", ErrMissingDependency)
	case deps.Engine == nil:
		return nil, fmt.Errorf("%w: engine", ErrMissingDependency)
	case deps.Resolver == nil:
		return nil, fmt.Errorf("%w: resolver", ErrMissingDependency)
	}

	return &Handler{
		config:    deps.Config,
		store:     deps.Store,
		catalog:   deps.Catalog,
		index:     deps.Index,
		engine:    deps.Engine,
		resolver:  deps.Resolver,
		publisher: deps.Publisher,
		resolved:  cache.NewLRU[[]resolve.NameMatch](deps.Config.Resolve.CacheSize, deps.Config.Resolve.CacheTTL),
		startTime: time.Now(),
	}, nil
}

// ClearCache drops every cached resolve result.
func (h *Handler) ClearCache() {
	h.resolved.Purge()
}
