// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bpaksoy/capstone/internal/logging"
)

func newRecommendCommand(c *cli) *cobra.Command {
	var userID int64
	var exclude []int64

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print recommendations for a user's bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID < 0 {
				return fmt.Errorf("invalid user id %d", userID)
			}

			comp, err := openComponents(c.cfg, logging.Logger())
			if err != nil {
				return err
			}
			defer comp.Close()

			ctx := cmd.Context()
			bookmarks, err := comp.db.BookmarkedColleges(ctx, userID)
			if err != nil {
				return fmt.Errorf("load bookmarks: %w", err)
			}
			result, err := comp.engine.Recommend(ctx, bookmarks, exclude, comp.breaker.FetchCandidates)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Int64VarP(&userID, "user", "u", 0, "User id whose bookmarks form the profile")
	cmd.Flags().Int64SliceVar(&exclude, "exclude", nil, "College ids to leave out (comma-separated)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
