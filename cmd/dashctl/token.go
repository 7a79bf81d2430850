package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the API",
		Long: `Sign a bearer token with AUTH_SECRET.

Without --ttl the token lives for AUTH_TOKEN_TTL.`,
		Args: cobra.NoArgs,
		RunE: runToken,
	}
	cmd.Flags().String("subject", "", "Token subject, usually the operator or dashboard name")
	cmd.Flags().String("role", domain.RoleViewer, "Role: admin or viewer")
	cmd.Flags().Duration("ttl", 0, "Token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func runToken(cmd *cobra.Command, _ []string) error {
	subject, _ := cmd.Flags().GetString("subject")
	role, _ := cmd.Flags().GetString("role")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	token, err := authenticating.NewService(cfg.Auth).IssueToken(subject, role, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
