package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"mailscout/pkg/serrors"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultMaxRetries   = 3
	defaultRetryBase    = 500 * time.Millisecond
	defaultRetryCap     = 30 * time.Second
	defaultMaxBodyBytes = 2 << 20 // 2 MiB
	maxRedirects        = 5
)

// FetcherOptions configures the HTTP fetcher.
type FetcherOptions struct {
	// Timeout bounds a single fetch attempt. Zero means 15s.
	Timeout time.Duration
	// MaxRetries is the number of retries after the first attempt. Zero means 3.
	MaxRetries uint64
	// RetryBase is the initial backoff delay, doubled per retry with jitter.
	RetryBase time.Duration
	// MaxBodyBytes caps how much of a response body is read. Zero means 2 MiB.
	MaxBodyBytes int64
	// UserAgents overrides the default user-agent pool.
	UserAgents []string
}

type fetcher struct {
	client  *http.Client
	pool    *uaPool
	options FetcherOptions
}

var _ Fetcher = (*fetcher)(nil)

// NewFetcher creates a Fetcher on top of the provided http.Client. A nil
// client gets a default one with a redirect cap.
func NewFetcher(client *http.Client, options FetcherOptions) Fetcher {
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}

	if options.MaxRetries == 0 {
		options.MaxRetries = defaultMaxRetries
	}

	if options.RetryBase <= 0 {
		options.RetryBase = defaultRetryBase
	}

	if options.MaxBodyBytes <= 0 {
		options.MaxBodyBytes = defaultMaxBodyBytes
	}

	if client == nil {
		client = &http.Client{
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}

				return nil
			},
		}
	}

	return &fetcher{
		client:  client,
		pool:    newUAPool(options.UserAgents),
		options: options,
	}
}

// Fetch retrieves rawURL with exponential backoff on transient failures.
// Rate-limit pushback (403/429) and 5xx responses are retried; other non-2xx
// statuses fail immediately. When the final response carried a body it is
// returned alongside the error: contact addresses regularly survive in 403
// and 404 pages, so callers should scan whatever came back.
func (f *fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	backoff := retry.NewExponential(f.options.RetryBase)
	backoff = retry.WithJitterPercent(20, backoff)
	backoff = retry.WithCappedDuration(defaultRetryCap, backoff)
	backoff = retry.WithMaxRetries(f.options.MaxRetries, backoff)

	var body string

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var attemptErr error

		body, attemptErr = f.fetchOnce(ctx, rawURL)

		return attemptErr
	})
	if err != nil {
		return body, fmt.Errorf("could not fetch %s: %w", rawURL, err)
	}

	return body, nil
}

func (f *fetcher) fetchOnce(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.options.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("User-Agent", f.pool.pick())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", retry.RetryableError(fmt.Errorf("could not send request: %w", err))
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, f.options.MaxBodyBytes))
	if err != nil {
		return "", retry.RetryableError(fmt.Errorf("could not read response body: %w", err))
	}

	body := strings.ToValidUTF8(string(b), "")

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
		return body, retry.RetryableError(serrors.With(serrors.ErrRateLimited, "blocked with status %d", resp.StatusCode))
	case resp.StatusCode >= 500:
		return body, retry.RetryableError(serrors.With(serrors.ErrUnavailable, "server error %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return body, serrors.With(serrors.ErrNotFound, "unexpected status %d", resp.StatusCode)
	}

	return body, nil
}
