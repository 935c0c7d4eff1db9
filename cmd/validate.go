package main

import (
	"context"
	"encoding/json"
	"fmt"
	"mailscout/internal/config"
	"mailscout/pkg/logger"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCommand constructs the 'validate' subcommand: a one-shot validation
// pass for a single address, printed as JSON on stdout.
func validateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [address]",
		Short: "Validates a single email address and prints the verdict as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			skipDNS, _ := cmd.Flags().GetBool("skip-dns")

			result, err := newValidator(cfg, skipDNS).Validate(ctx, args[0])
			if err != nil {
				logger.Fatal(ctx, "could not validate address", zap.Error(err))
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not marshal verdict", zap.Error(err))
			}

			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	cmd.Flags().Bool("skip-dns", false, "Skip the DNS stage")

	return cmd
}
