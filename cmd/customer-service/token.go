package main

import (
	"fmt"
	"time"

	"customer-service/internal/services"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.IsProduction() {
				return fmt.Errorf("token minting is disabled in production")
			}

			token, expiresAt, err := services.NewTokenService(&cfg.JWT).GenerateAccessToken(subject)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "local-developer", "Token subject")
	return cmd
}
