package source

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"mailscout/pkg/domain"
)

// directoryPatterns are profile URL templates on sites that commonly list
// company contact data. The %s is the slugified company name.
//
//nolint: gochecknoglobals
var directoryPatterns = []string{
	"https://www.linkedin.com/company/%s",
	"https://www.crunchbase.com/organization/%s",
	"https://github.com/%s",
	"https://www.f6s.com/%s",
	"https://about.me/%s",
	"https://wellfound.com/company/%s",
}

var slugCleanup = regexp.MustCompile(`[^a-z0-9-]+`)

type directoryConnector struct {
	fetcher Fetcher
}

var _ Connector = (*directoryConnector)(nil)

// NewDirectory creates the connector that probes directory and profile sites.
func NewDirectory(fetcher Fetcher) Connector {
	return &directoryConnector{fetcher: fetcher}
}

func (c *directoryConnector) Type() domain.SourceType { return domain.SourceDirectory }

// Pages probes generated profile URLs plus any profile URLs the caller
// already knows. The URLs span distinct hosts, so they are fetched with a
// bounded fan-out. Directories 404 or block often; that is expected and shows
// up as source errors only.
func (c *directoryConnector) Pages(
	ctx context.Context,
	target domain.TargetDescriptor,
) ([]Page, []domain.SourceError, error) {
	urls := profileURLs(target)
	outcomes := fetchAll(ctx, c.fetcher, domain.SourceDirectory, urls)

	var (
		pages  []Page
		errors []domain.SourceError
	)

	for i, pageURL := range urls {
		out := outcomes[i]
		if !out.done {
			continue
		}

		if out.err != nil {
			errors = append(errors, domain.SourceError{
				URL:    pageURL,
				Source: domain.SourceDirectory,
				Reason: out.err.Error(),
			})
		}

		// error-page bodies are scanned too
		if out.body != "" {
			pages = append(pages, Page{URL: pageURL, Type: domain.SourceDirectory, Body: out.body})
		}
	}

	return pages, errors, ctx.Err()
}

func profileURLs(target domain.TargetDescriptor) []string {
	seen := map[string]struct{}{}

	var urls []string

	add := func(u string) {
		if _, dup := seen[u]; dup || u == "" {
			return
		}

		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	for _, known := range target.KnownProfileURLs {
		add(strings.TrimSpace(known))
	}

	if slug := Slugify(target.CompanyName); slug != "" {
		for _, pattern := range directoryPatterns {
			add(fmt.Sprintf(pattern, slug))
		}
	}

	return urls
}

// Slugify turns a company name into the URL slug directories typically use
// ("Acme Corp Inc." becomes "acme-corp-inc").
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugCleanup.ReplaceAllString(s, "")
	s = strings.Trim(s, "-")

	return s
}
