package main

import (
	"context"
	"encoding/json"
	"fmt"
	"mailscout/internal/config"
	"mailscout/internal/discovery"
	"mailscout/pkg/domain"
	"mailscout/pkg/logger"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// discoverCommand constructs the 'discover' subcommand: a one-shot discovery
// run without the API server, workers or database. The result is printed as
// JSON on stdout.
func discoverCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Runs a one-shot email discovery for a company and prints the result as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			companyName, _ := cmd.Flags().GetString("company")
			domainName, _ := cmd.Flags().GetString("domain")
			websiteURL, _ := cmd.Flags().GetString("website")
			profileURLs, _ := cmd.Flags().GetStringArray("profile")
			skipDNS, _ := cmd.Flags().GetBool("skip-dns")

			target, targetKey, err := discovery.NormalizeTarget(domain.TargetDescriptor{
				CompanyName:      companyName,
				Domain:           domainName,
				WebsiteURL:       websiteURL,
				KnownProfileURLs: profileURLs,
			})
			if err != nil {
				logger.Fatal(ctx, "invalid target", zap.Error(err))
			}

			logger.Info(ctx, "starting discovery run", zap.String("targetKey", targetKey))

			result, err := newPipeline(cfg, newValidator(cfg, skipDNS)).Run(ctx, target)
			if err != nil {
				logger.Fatal(ctx, "discovery run failed", zap.Error(err))
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not marshal result", zap.Error(err))
			}

			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	cmd.Flags().String("company", "", "Company name, e.g. \"Acme Corp\"")
	cmd.Flags().String("domain", "", "Company domain, e.g. acme.com")
	cmd.Flags().String("website", "", "Company homepage URL")
	cmd.Flags().StringArray("profile", nil, "Known directory/profile URL (repeatable)")
	cmd.Flags().Bool("skip-dns", false, "Skip DNS checks when validating top hits")

	return cmd
}
