// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bpaksoy/capstone/internal/database"
	"github.com/bpaksoy/capstone/internal/importer"
	"github.com/bpaksoy/capstone/internal/logging"
)

func newImportCommand(c *cli) *cobra.Command {
	var file string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import colleges from an IPEDS CSV export",
		Long: `Import colleges from an IPEDS CSV export.

Rows are upserted by UNITID in batches of import.batch_size. Rows the mapper
rejects are counted and skipped. With --dry-run the file is parsed and mapped
but nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				file = c.cfg.Import.Path
			}
			if file == "" {
				return errors.New("no input file: pass --file or set IMPORT_PATH")
			}

			logger := logging.Logger()
			var imp *importer.Importer
			if dryRun {
				imp = importer.NewImporter(&c.cfg.Import, nil, nil, logger)
			} else {
				db, err := database.New(&c.cfg.Database)
				if err != nil {
					return fmt.Errorf("open database: %w", err)
				}
				defer func() {
					if err := db.Close(); err != nil {
						logging.Error().Err(err).Msg("Error closing database")
					}
				}()
				// A running server refreshes on its own schedule; there is no
				// cross-process bus to notify it.
				imp = importer.NewImporter(&c.cfg.Import, db, nil, logger)
			}

			stats, err := imp.ImportFile(cmd.Context(), file)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "IPEDS CSV file (default: import.path)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and map rows without writing them")

	return cmd
}
