package main

import (
	"context"
	"errors"
	"mailscout/internal/api"
	"mailscout/internal/api/handler/v1handler"
	"mailscout/internal/config"
	"mailscout/internal/discovery"
	"mailscout/internal/score"
	"mailscout/internal/source"
	"mailscout/internal/validate"
	"mailscout/internal/worker"
	"mailscout/pkg/cache"
	"mailscout/pkg/domain"
	"mailscout/pkg/logger"
	"mailscout/pkg/storage/postgres"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// newValidator builds the email validator from config. skipDNS forces the DNS
// stage off regardless of config, used by the offline one-shot commands.
func newValidator(cfg *config.Config, skipDNS bool) validate.Validator {
	return validate.New(validate.NewResolver(), cache.NewMemory[*domain.ValidationResult](), validate.Options{
		CacheTTL:   cfg.Validator.CacheTTL,
		DNSTimeout: cfg.Validator.DNSTimeout,
		SkipDNS:    cfg.Validator.SkipDNS || skipDNS,
	})
}

// newPipeline wires the fetcher, source connectors and scorer into a discovery
// pipeline that validates its top hits with the given validator.
func newPipeline(cfg *config.Config, validator validate.Validator) *discovery.Pipeline {
	fetcher := source.NewFetcher(nil, source.FetcherOptions{
		Timeout:      cfg.Fetcher.Timeout,
		MaxRetries:   uint64(cfg.Fetcher.MaxRetries), //nolint: gosec
		RetryBase:    cfg.Fetcher.RetryBaseDelay,
		MaxBodyBytes: cfg.Fetcher.MaxBodyBytes,
	})

	connectors := []source.Connector{
		source.NewWebsite(fetcher),
		source.NewDirectory(fetcher),
		source.NewSearch(fetcher, source.SearchOptions{
			SearxURL:       cfg.Search.SearxURL,
			MaxQueries:     cfg.Search.MaxQueries,
			MaxResultPages: cfg.Search.MaxResultPages,
			AvoidHosts:     cfg.Search.AvoidHosts,
		}),
	}

	return discovery.NewPipeline(
		connectors,
		score.New(score.Options{MinScore: cfg.Discovery.MinScore}),
		validator,
		cache.NewMemory[*domain.DiscoveryResult](),
		discovery.NewPipelineOptions(cfg),
	)
}

// newDiscoverer wires the pipeline and validator into the discovery service
// backed by the given storage.
func newDiscoverer(cfg *config.Config, strg *postgres.PgSQL) discovery.Discoverer {
	validator := newValidator(cfg, false)

	return discovery.New(strg, newPipeline(cfg, validator), validator, discovery.NewOptions(cfg))
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			discoverer := newDiscoverer(cfg, strg)

			riverClient, err := worker.Start(ctx, strg.Pool, discoverer, cfg.Worker.MaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{Discoverer: discoverer},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop river queue client", zap.Error(err))
			}
		},
	}

	return cmd
}
