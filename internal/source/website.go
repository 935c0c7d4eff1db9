package source

import (
	"context"
	"net/url"
	"strings"
	"time"

	"mailscout/pkg/domain"
	"mailscout/pkg/metrics"
)

// contactPaths are the site paths most likely to carry contact data, fetched
// in addition to the homepage.
//
//nolint: gochecknoglobals
var contactPaths = []string{"", "/contact", "/contact-us", "/about", "/about-us", "/team", "/support", "/help"}

type websiteConnector struct {
	fetcher Fetcher
}

var _ Connector = (*websiteConnector)(nil)

// NewWebsite creates the connector that crawls the target company's own site.
func NewWebsite(fetcher Fetcher) Connector {
	return &websiteConnector{fetcher: fetcher}
}

func (c *websiteConnector) Type() domain.SourceType { return domain.SourceWebsite }

// Pages fetches the homepage and the usual contact paths. The connector is
// inert when the target carries neither a website URL nor a domain. Paths are
// fetched sequentially to stay polite toward a single host.
func (c *websiteConnector) Pages(
	ctx context.Context,
	target domain.TargetDescriptor,
) ([]Page, []domain.SourceError, error) {
	base := baseURL(target)
	if base == "" {
		return nil, nil, nil
	}

	var (
		pages  []Page
		errors []domain.SourceError
	)

	for _, path := range contactPaths {
		if err := ctx.Err(); err != nil {
			return pages, errors, err
		}

		pageURL := base + path

		start := time.Now()

		body, err := c.fetcher.Fetch(ctx, pageURL)
		metrics.FetchDuration.WithLabelValues(string(domain.SourceWebsite)).Observe(time.Since(start).Seconds())

		if err != nil {
			metrics.PagesFetched.WithLabelValues(string(domain.SourceWebsite), "error").Inc()
			errors = append(errors, domain.SourceError{
				URL:    pageURL,
				Source: domain.SourceWebsite,
				Reason: err.Error(),
			})
		} else {
			metrics.PagesFetched.WithLabelValues(string(domain.SourceWebsite), "ok").Inc()
		}

		// error-page bodies are scanned too; addresses survive in 403/404 pages
		if body != "" {
			pages = append(pages, Page{URL: pageURL, Type: domain.SourceWebsite, Body: body})
		}
	}

	return pages, errors, nil
}

// baseURL derives the crawl base from the target, preferring the explicit
// website URL over the bare domain.
func baseURL(target domain.TargetDescriptor) string {
	raw := target.WebsiteURL
	if raw == "" && target.Domain != "" {
		raw = "https://" + target.Domain
	}

	if raw == "" {
		return ""
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""

	return u.String()
}
