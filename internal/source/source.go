// Package source implements the page connectors a discovery run draws from:
// the company website, well-known directory profiles and meta-search results.
// Connectors are best-effort; individual page failures are reported as source
// errors on the result, never as run failures.
package source

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"mailscout/pkg/domain"
	"mailscout/pkg/metrics"
)

// maxInFlightFetches caps how many URLs a connector fetches at once. The
// website connector stays sequential on purpose (all its paths share one
// host); the cap applies where a connector spans distinct hosts.
const maxInFlightFetches = 5

// Page is one successfully fetched page, ready for extraction.
type Page struct {
	// URL is the final URL the body was fetched from.
	URL string
	// Type classifies the connector that produced the page.
	Type domain.SourceType
	// Body is the page markup or, for search snippets, the snippet text.
	Body string
}

// Connector discovers and fetches candidate pages for a target.
//
//go:generate mockgen -package mocksource -source=source.go -destination=mock/mocksource.go *
type Connector interface {
	// Type identifies the connector.
	Type() domain.SourceType
	// Pages fetches the connector's pages for target. Per-URL failures come
	// back as source errors alongside whatever pages succeeded; an error
	// return is reserved for context cancellation.
	Pages(ctx context.Context, target domain.TargetDescriptor) ([]Page, []domain.SourceError, error)
}

// Fetcher retrieves a single page.
type Fetcher interface {
	// Fetch returns the body at rawURL. Retries and user-agent rotation are
	// handled internally. A non-empty body may accompany an error: error
	// pages (403, 404) still carry contact data often enough to be worth
	// scanning.
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// fetchOutcome is one fetchAll result slot.
type fetchOutcome struct {
	body string
	err  error
	done bool
}

// fetchAll retrieves urls with at most maxInFlightFetches in flight, recording
// metrics per fetch and keeping outcomes in input order. Cancellation leaves
// the remaining slots unset (done=false); the caller reports ctx.Err().
func fetchAll(ctx context.Context, fetcher Fetcher, src domain.SourceType, urls []string) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlightFetches)

	for i, pageURL := range urls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()

			body, err := fetcher.Fetch(gctx, pageURL)
			metrics.FetchDuration.WithLabelValues(string(src)).Observe(time.Since(start).Seconds())

			if err != nil {
				metrics.PagesFetched.WithLabelValues(string(src), "error").Inc()
			} else {
				metrics.PagesFetched.WithLabelValues(string(src), "ok").Inc()
			}

			outcomes[i] = fetchOutcome{body: body, err: err, done: true}

			return nil
		})
	}

	// fetch failures are soft; only cancellation surfaces, via the caller's ctx
	_ = g.Wait()

	return outcomes
}
