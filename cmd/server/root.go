// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/bpaksoy/capstone/internal/config"
	"github.com/bpaksoy/capstone/internal/logging"
)

var version = "dev"

// cli holds state shared by every subcommand.
type cli struct {
	configPath string
	logLevel   string

	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "capstone",
		Short: "College recommendations and entity resolution",
		Long: `capstone serves college recommendations built from a user's bookmarks
and resolves free-text college mentions against the IPEDS catalog.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load()
		},
	}

	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a YAML config file (overrides CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")

	cmd.AddCommand(newServeCommand(c))
	cmd.AddCommand(newImportCommand(c))
	cmd.AddCommand(newRecommendCommand(c))
	cmd.AddCommand(newResolveCommand(c))
	cmd.AddCommand(newTokenCommand(c))

	return cmd
}

// load reads configuration and initializes logging.
func (c *cli) load() error {
	if c.configPath != "" {
		if _, err := os.Stat(c.configPath); err != nil {
			return &configError{fmt.Errorf("config file: %w", err)}
		}
		if err := os.Setenv(config.ConfigPathEnvVar, c.configPath); err != nil {
			return &configError{err}
		}
	}
	if c.logLevel != "" && !logging.ValidLevel(c.logLevel) {
		return &configError{fmt.Errorf("invalid log level %q", c.logLevel)}
	}

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return &configError{err}
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	c.cfg = cfg
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func execute() error {
	return newRootCommand().Execute()
}
