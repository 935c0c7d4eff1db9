package discovery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mailscout/internal/config"
	"mailscout/internal/dedupe"
	"mailscout/internal/extract"
	"mailscout/internal/score"
	"mailscout/internal/source"
	"mailscout/internal/validate"
	"mailscout/pkg/cache"
	"mailscout/pkg/domain"
	"mailscout/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxConcurrentSources bounds connector fan-out when not configured.
	DefaultMaxConcurrentSources = 3
	// DefaultValidateTop is how many top ranked addresses get validated when
	// not configured.
	DefaultValidateTop = 5
	// DefaultSessionTTL is how long a run's result is reused for repeat calls
	// against the same target when not configured.
	DefaultSessionTTL = 15 * time.Minute
)

// PipelineOptions configure a Pipeline.
type PipelineOptions struct {
	// MaxConcurrentSources bounds how many source connectors run in parallel.
	MaxConcurrentSources int
	// ValidateTop is how many of the highest ranked addresses get a full
	// validation pass at the end of a run. Negative validates every hit.
	ValidateTop int
	// SessionTTL is how long a finished result is reused for repeat runs
	// against the same target key.
	SessionTTL time.Duration
}

// NewPipelineOptions constructs a PipelineOptions value from the provided
// application config.
func NewPipelineOptions(cfg *config.Config) PipelineOptions {
	return PipelineOptions{
		MaxConcurrentSources: cfg.Discovery.MaxConcurrentSources,
		ValidateTop:          cfg.Discovery.ValidateTop,
		SessionTTL:           cfg.Discovery.SessionCacheTTL,
	}
}

// Pipeline runs one discovery end to end: it fans out to the source
// connectors, extracts candidates from every fetched page, scores and
// deduplicates them, and validates the top ranked addresses.
type Pipeline struct {
	connectors []source.Connector
	scorer     *score.Engine
	validator  validate.Validator
	sessions   cache.Cache[*domain.DiscoveryResult]
	options    PipelineOptions
}

var _ Runner = (*Pipeline)(nil)

// NewPipeline creates a Pipeline over the given connectors. A nil sessions
// cache disables per-target result reuse and makes every Run crawl afresh.
func NewPipeline(
	connectors []source.Connector,
	scorer *score.Engine,
	validator validate.Validator,
	sessions cache.Cache[*domain.DiscoveryResult],
	options PipelineOptions,
) *Pipeline {
	if options.MaxConcurrentSources <= 0 {
		options.MaxConcurrentSources = DefaultMaxConcurrentSources
	}
	if options.ValidateTop == 0 {
		options.ValidateTop = DefaultValidateTop
	}
	if options.SessionTTL <= 0 {
		options.SessionTTL = DefaultSessionTTL
	}

	return &Pipeline{
		connectors: connectors,
		scorer:     scorer,
		validator:  validator,
		sessions:   sessions,
		options:    options,
	}
}

// Run implements Runner. Individual page and connector failures surface as
// source errors on the result; only context cancellation aborts the run.
// Results are cached in-process per target key, so repeat runs within the
// session TTL return the earlier result without touching the network.
func (p *Pipeline) Run(ctx context.Context, target domain.TargetDescriptor) (*domain.DiscoveryResult, error) {
	var sessionKey string

	if p.sessions != nil {
		if _, key, err := NormalizeTarget(target); err == nil {
			sessionKey = key

			if cached, ok := p.sessions.Get(ctx, sessionKey); ok {
				logger.Debug(ctx, "reusing session result", zap.String("targetKey", sessionKey))

				return cached, nil
			}
		}
	}

	var (
		mu        sync.Mutex
		pages     []source.Page
		srcErrors []domain.SourceError
		failed    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.options.MaxConcurrentSources)

	for _, c := range p.connectors {
		g.Go(func() error {
			got, errs, err := c.Pages(gctx, target)
			if err != nil {
				return fmt.Errorf("could not fetch %s pages: %w", c.Type(), err)
			}

			mu.Lock()
			defer mu.Unlock()
			pages = append(pages, got...)
			srcErrors = append(srcErrors, errs...)
			if len(got) == 0 {
				failed++
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	var candidates []domain.CandidateEmail
	for _, page := range pages {
		candidates = append(candidates, extract.FromHTML(page.URL, page.Type, page.Body)...)
	}

	hits := dedupe.Merge(p.scorer.Rank(candidates, target))

	for i := range hits {
		if p.options.ValidateTop > 0 && i >= p.options.ValidateTop {
			break
		}

		res, err := p.validator.Validate(ctx, hits[i].Address)
		if err != nil {
			// validation is best effort on top of discovery; a resolver
			// outage should not fail the whole run
			logger.Warn(ctx, "could not validate address",
				zap.String("address", hits[i].Address), zap.Error(err))

			continue
		}

		hits[i].Validation = res
		if res.Valid {
			hits[i].Verified = true
		}
	}

	result := &domain.DiscoveryResult{
		Emails: hits,
		Errors: srcErrors,
		Stats: domain.DiscoveryStats{
			PagesFetched:    len(pages),
			SourcesQueried:  len(p.connectors),
			SourcesFailed:   failed,
			CandidatesFound: len(candidates),
		},
		Timestamp: time.Now().UTC(),
	}

	if p.sessions != nil && sessionKey != "" {
		p.sessions.Set(ctx, sessionKey, result, p.options.SessionTTL)
	}

	return result, nil
}
