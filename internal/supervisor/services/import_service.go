// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package services

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bpaksoy/capstone/internal/importer"
)

// FileImporter loads a CSV file into the catalog. Satisfied by
// *importer.Importer.
type FileImporter interface {
	ImportFile(ctx context.Context, path string) (*importer.Stats, error)
}

// ImportService seeds the catalog from a file once per process.
//
// The import runs when the service first starts. A failed import is logged
// and not retried: a malformed file does not fix itself on restart. After the
// import the service idles until shutdown.
type ImportService struct {
	importer FileImporter
	path     string
	onDone   func(*importer.Stats)
	logger   zerolog.Logger
	name     string
	started  atomic.Bool
}

// NewImportService creates the service. onDone, if set, runs after a
// successful import.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewImportService(imp FileImporter, path string, onDone func(*importer.Stats), logger zerolog.Logger) *ImportService {
	return &ImportService{
		importer: imp,
		path:     path,
		onDone:   onDone,
		logger:   logger.With().Str("service", "catalog-import").Logger(),
		name:     "catalog-import",
	}
}

// Serve implements suture.Service.
func (s *ImportService) Serve(ctx context.Context) error {
	if s.started.CompareAndSwap(false, true) {
		s.logger.Info().Str("path", s.path).Msg("Starting catalog import")
		stats, err := s.importer.ImportFile(ctx, s.path)
		switch {
		case ctx.Err() != nil:
			s.logger.Info().Msg("Import canceled due to shutdown")
			return ctx.Err()
		case err != nil:
			s.logger.Error().Err(err).Str("path", s.path).Msg("Catalog import failed")
		default:
			s.logger.Info().
				Int64("imported", stats.Imported).
				Int64("skipped", stats.Skipped).
				Dur("duration", stats.Duration()).
				Msg("Catalog import completed")
			if s.onDone != nil {
				s.onDone(stats)
			}
		}
	}

	<-ctx.Done()
	return ctx.Err()
}

// String implements fmt.Stringer for suture logs.
func (s *ImportService) String() string {
	return s.name
}
