// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bpaksoy/capstone/internal/auth"
	"github.com/bpaksoy/capstone/internal/validation"
)

// tokenOutput is printed by the token command.
type tokenOutput struct {
	Access    string    `json:"access"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newTokenCommand(c *cli) *cobra.Command {
	var req validation.TokenRequest

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token",
		Long: `Issue an HS256 access token signed with security.jwt_secret.

The token carries a user_id claim and expires after security.token_ttl.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verr := validation.ValidateStruct(&req); verr != nil {
				return verr
			}

			manager, err := auth.NewJWTManager(&c.cfg.Security)
			if err != nil {
				return err
			}
			token, err := manager.GenerateToken(req.UserID, req.Username)
			if err != nil {
				return err
			}
			claims, err := manager.ValidateToken(token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), tokenOutput{
				Access:    token,
				UserID:    int64(claims.UserID),
				ExpiresAt: claims.ExpiresAt.UTC(),
			})
		},
	}

	cmd.Flags().Int64VarP(&req.UserID, "user", "u", 0, "User id for the user_id claim")
	cmd.Flags().StringVar(&req.Username, "username", "", "Optional username claim")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
