// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bpaksoy/capstone/internal/logging"
	"github.com/bpaksoy/capstone/internal/resolve"
)

// resolveOutput mirrors the API's resolve response.
type resolveOutput struct {
	Text    string              `json:"text"`
	Matches []resolve.NameMatch `json:"matches"`
}

func newResolveCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve TEXT...",
		Short: "Resolve college mentions in free text",
		Example: `  capstone resolve "I was admitted to MIT and Boston University"
  capstone resolve Harvrd`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := openComponents(c.cfg, logging.Logger())
			if err != nil {
				return err
			}
			defer comp.Close()

			ctx := cmd.Context()
			if err := comp.loadIndex(ctx); err != nil {
				return err
			}

			text := strings.Join(args, " ")
			matches, err := comp.resolver.ResolveMentions(ctx, text, comp.breaker.SearchNames)
			if err != nil {
				return err
			}
			if matches == nil {
				matches = []resolve.NameMatch{}
			}
			return printJSON(cmd.OutOrStdout(), resolveOutput{Text: text, Matches: matches})
		},
	}
}
