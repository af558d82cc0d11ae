// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bpaksoy/capstone/internal/config"
	"github.com/bpaksoy/capstone/internal/events"
	"github.com/bpaksoy/capstone/internal/models"
)

// ErrImportRunning is returned when Import is called during another import.
var ErrImportRunning = errors.New("import already in progress")

// CollegeWriter persists catalog rows.
type CollegeWriter interface {
	UpsertColleges(ctx context.Context, colleges []models.College) (int, error)
}

// Importer loads IPEDS CSV data into the catalog.
type Importer struct {
	cfg       *config.ImportConfig
	store     CollegeWriter
	publisher events.Publisher
	logger    zerolog.Logger
	dryRun    bool

	mu      sync.RWMutex
	running bool
	stats   *Stats
}

// NewImporter creates an importer. A nil store makes every import a dry
// run; a nil publisher skips the catalog.updated event.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewImporter(cfg *config.ImportConfig, store CollegeWriter, publisher events.Publisher, logger zerolog.Logger) *Importer {
	return &Importer{
		cfg:       cfg,
		store:     store,
		publisher: publisher,
		logger:    logger.With().Str("component", "importer").Logger(),
		dryRun:    store == nil,
	}
}

// ImportFile opens path and imports it.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Stats, error) {
	f, err := os.Open(path) //nolint:gosec // path is operator supplied
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			i.logger.Warn().Err(closeErr).Msg("Error closing import file")
		}
	}()

	i.logger.Info().Str("path", path).Msg("Starting import")
	return i.Import(ctx, f)
}

// Import reads every row from r, upserting valid colleges in batches.
// Colleges already written stay written if a later batch fails.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Stats, error) {
	i.mu.Lock()
	if i.running {
		i.mu.Unlock()
		return nil, ErrImportRunning
	}
	i.running = true
	i.stats = &Stats{StartTime: time.Now(), DryRun: i.dryRun}
	i.mu.Unlock()

	defer func() {
		i.mu.Lock()
		i.running = false
		i.stats.EndTime = time.Now()
		i.mu.Unlock()
	}()

	reader, err := NewReader(r)
	if err != nil {
		return i.GetStats(), err
	}
	if err := checkHeaders(reader.Headers()); err != nil {
		return i.GetStats(), err
	}

	if err := i.processAllBatches(ctx, reader); err != nil {
		return i.GetStats(), err
	}

	stats := i.GetStats()
	i.logger.Info().
		Int64("rows", stats.Rows).
		Int64("imported", stats.Imported).
		Int64("skipped", stats.Skipped).
		Bool("dry_run", stats.DryRun).
		Dur("duration", stats.Duration()).
		Msg("Import completed")

	if i.publisher != nil && !i.dryRun && stats.Imported > 0 {
		event := events.CatalogUpdated{Source: "import", Written: int(stats.Imported), Timestamp: time.Now().UTC()}
		if err := i.publisher.Publish(ctx, event); err != nil {
			i.logger.Warn().Err(err).Msg("Failed to publish catalog update")
		}
	}

	return stats, nil
}

func (i *Importer) batchSize() int {
	if i.cfg == nil || i.cfg.BatchSize <= 0 {
		return 500
	}
	return i.cfg.BatchSize
}

func (i *Importer) progressEvery() int64 {
	if i.cfg == nil || i.cfg.ProgressEvery <= 0 {
		return 1000
	}
	return int64(i.cfg.ProgressEvery)
}

// processAllBatches reads rows until EOF, flushing every full batch.
func (i *Importer) processAllBatches(ctx context.Context, reader *Reader) error {
	size := i.batchSize()
	every := i.progressEvery()
	batch := make([]models.College, 0, size)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		college, mapErr := ToCollege(row)

		i.mu.Lock()
		i.stats.Rows++
		if mapErr != nil {
			i.stats.Skipped++
		}
		rows := i.stats.Rows
		i.mu.Unlock()

		if mapErr != nil {
			i.logger.Debug().Err(mapErr).Int("line", reader.Line()).Msg("Skipping row")
		} else {
			batch = append(batch, college)
		}

		if len(batch) == size {
			if err := i.flush(ctx, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}

		if rows%every == 0 {
			stats := i.GetStats()
			i.logger.Info().
				Int64("rows", stats.Rows).
				Int64("imported", stats.Imported).
				Int64("skipped", stats.Skipped).
				Float64("rows_per_second", stats.RowsPerSecond()).
				Msg("Import progress")
		}
	}

	return i.flush(ctx, batch)
}

func (i *Importer) flush(ctx context.Context, batch []models.College) error {
	if len(batch) == 0 {
		return nil
	}

	written := len(batch)
	if !i.dryRun {
		n, err := i.store.UpsertColleges(ctx, batch)
		if err != nil {
			return fmt.Errorf("upsert batch: %w", err)
		}
		written = n
	}

	i.mu.Lock()
	i.stats.Imported += int64(written)
	i.mu.Unlock()
	return nil
}

// GetStats returns a copy of the current import statistics.
func (i *Importer) GetStats() *Stats {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.stats == nil {
		return &Stats{}
	}
	stats := *i.stats
	return &stats
}

// IsRunning returns whether an import is currently in progress.
func (i *Importer) IsRunning() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.running
}
