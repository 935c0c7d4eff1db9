package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"mailscout/pkg/domain"
	"mailscout/pkg/logger"
	"mailscout/pkg/metrics"

	"go.uber.org/zap"
)

// defaultAvoidHosts are hosts whose pages are JS shells, login walls or
// redirect hops and never yield usable contact data.
//
//nolint: gochecknoglobals
var defaultAvoidHosts = []string{
	"facebook.com", "instagram.com", "twitter.com", "x.com",
	"youtube.com", "pinterest.com", "tiktok.com",
	"bit.ly", "t.co", "goo.gl", "tinyurl.com",
}

// SearchOptions configures the meta-search connector.
type SearchOptions struct {
	// SearxURL is the base URL of a SearxNG instance. Empty disables the
	// SearxNG backends and goes straight to the search-engine fallback.
	SearxURL string
	// MaxQueries caps how many queries are issued per run. Zero means 3.
	MaxQueries int
	// MaxResultPages caps how many result pages are fetched in full per
	// query, on top of scanning the snippets. Zero means 5.
	MaxResultPages int
	// AvoidHosts extends the built-in list of hosts never fetched in full.
	AvoidHosts []string
}

// searchResult is one hit from any search backend.
type searchResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type searchConnector struct {
	fetcher Fetcher
	options SearchOptions
	avoid   map[string]struct{}
}

var _ Connector = (*searchConnector)(nil)

// NewSearch creates the connector that queries a SearxNG instance, falling
// back to scraping a public search engine when the instance is unavailable.
func NewSearch(fetcher Fetcher, options SearchOptions) Connector {
	if options.MaxQueries <= 0 {
		options.MaxQueries = 3
	}

	if options.MaxResultPages <= 0 {
		options.MaxResultPages = 5
	}

	avoid := make(map[string]struct{}, len(defaultAvoidHosts)+len(options.AvoidHosts))
	for _, h := range append(append([]string{}, defaultAvoidHosts...), options.AvoidHosts...) {
		avoid[strings.ToLower(h)] = struct{}{}
	}

	return &searchConnector{fetcher: fetcher, options: options, avoid: avoid}
}

func (c *searchConnector) Type() domain.SourceType { return domain.SourceSearch }

// Pages runs the target's queries, turns result snippets into pages and
// additionally fetches the most promising result URLs in full. Result URLs
// span distinct hosts, so the full fetches run with a bounded fan-out.
//
//nolint: cyclop
func (c *searchConnector) Pages(
	ctx context.Context,
	target domain.TargetDescriptor,
) ([]Page, []domain.SourceError, error) {
	var (
		pages   []Page
		errors  []domain.SourceError
		fetched = map[string]struct{}{}
	)

	for _, query := range c.buildQueries(target) {
		if err := ctx.Err(); err != nil {
			return pages, errors, err
		}

		results, err := c.search(ctx, query)
		if err != nil {
			errors = append(errors, domain.SourceError{
				URL:    query,
				Source: domain.SourceSearch,
				Reason: err.Error(),
			})

			continue
		}

		remaining := c.options.MaxResultPages

		var toFetch []string

		for _, r := range results {
			if r.URL == "" {
				continue
			}

			// Snippets frequently contain the address outright.
			if snippet := strings.TrimSpace(r.Title + " " + r.Content); snippet != "" {
				pages = append(pages, Page{URL: r.URL, Type: domain.SourceSearch, Body: snippet})
			}

			if remaining == 0 || c.avoided(r.URL) {
				continue
			}

			if _, dup := fetched[r.URL]; dup {
				continue
			}

			fetched[r.URL] = struct{}{}
			remaining--

			toFetch = append(toFetch, r.URL)
		}

		outcomes := fetchAll(ctx, c.fetcher, domain.SourceSearch, toFetch)

		for i, resultURL := range toFetch {
			out := outcomes[i]
			if !out.done {
				continue
			}

			if out.err != nil {
				errors = append(errors, domain.SourceError{
					URL:    resultURL,
					Source: domain.SourceSearch,
					Reason: out.err.Error(),
				})
			}

			// error-page bodies are scanned too
			if out.body != "" {
				pages = append(pages, Page{URL: resultURL, Type: domain.SourceSearch, Body: out.body})
			}
		}
	}

	return pages, errors, ctx.Err()
}

// search tries the backends in order of fidelity: SearxNG JSON, SearxNG HTML,
// then Google and finally Bing scraping. The first backend returning results
// wins.
func (c *searchConnector) search(ctx context.Context, query string) ([]searchResult, error) {
	var lastErr error

	if c.options.SearxURL != "" {
		results, err := c.searxJSON(ctx, query)
		if err == nil && len(results) > 0 {
			metrics.SearchRequests.WithLabelValues("searx_json", "ok").Inc()

			return results, nil
		}

		metrics.SearchRequests.WithLabelValues("searx_json", "error").Inc()
		logger.Debug(ctx, "searx json backend failed, falling back", zap.Error(err))

		lastErr = err

		results, err = c.searxHTML(ctx, query)
		if err == nil && len(results) > 0 {
			metrics.SearchRequests.WithLabelValues("searx_html", "ok").Inc()

			return results, nil
		}

		metrics.SearchRequests.WithLabelValues("searx_html", "error").Inc()
		logger.Debug(ctx, "searx html backend failed, falling back", zap.Error(err))

		if err != nil {
			lastErr = err
		}
	}

	results, err := c.googleScrape(ctx, query)
	if err == nil && len(results) > 0 {
		metrics.SearchRequests.WithLabelValues("google", "ok").Inc()

		return results, nil
	}

	metrics.SearchRequests.WithLabelValues("google", "error").Inc()
	logger.Debug(ctx, "google backend failed, falling back", zap.Error(err))

	if err != nil {
		lastErr = err
	}

	results, err = c.bingScrape(ctx, query)
	if err == nil && len(results) > 0 {
		metrics.SearchRequests.WithLabelValues("bing", "ok").Inc()

		return results, nil
	}

	metrics.SearchRequests.WithLabelValues("bing", "error").Inc()

	if err != nil {
		lastErr = err
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all search backends failed: %w", lastErr)
	}

	return nil, nil
}

func (c *searchConnector) searxJSON(ctx context.Context, query string) ([]searchResult, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json", strings.TrimSuffix(c.options.SearxURL, "/"), url.QueryEscape(query))

	body, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Results []searchResult `json:"results"`
	}

	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fmt.Errorf("could not decode searx response: %w", err)
	}

	return parsed.Results, nil
}

func (c *searchConnector) searxHTML(ctx context.Context, query string) ([]searchResult, error) {
	u := fmt.Sprintf("%s/search?q=%s", strings.TrimSuffix(c.options.SearxURL, "/"), url.QueryEscape(query))

	body, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not parse searx page: %w", err)
	}

	var results []searchResult

	doc.Find("article.result, div.result").Each(func(_ int, s *goquery.Selection) {
		link := s.Find("h3 a, a.url_header").First()

		href, ok := link.Attr("href")
		if !ok {
			return
		}

		results = append(results, searchResult{
			URL:     href,
			Title:   strings.TrimSpace(link.Text()),
			Content: strings.TrimSpace(s.Find("p.content, .content").First().Text()),
		})
	})

	return results, nil
}

// googleScrape queries Google directly and parses the result page.
// Selectors cover the handful of layouts the engine serves.
func (c *searchConnector) googleScrape(ctx context.Context, query string) ([]searchResult, error) {
	u := "https://www.google.com/search?num=20&q=" + url.QueryEscape(query)

	body, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not parse result page: %w", err)
	}

	var results []searchResult

	seen := map[string]struct{}{}

	doc.Find("div.g, div.yuRUbf, div[data-hveid], div.rc").Each(func(_ int, s *goquery.Selection) {
		link := s.Find("a[href]").First()

		href, ok := link.Attr("href")
		if !ok {
			return
		}

		href = unwrapRedirect(href)
		if href == "" || !strings.HasPrefix(href, "http") {
			return
		}

		if _, dup := seen[href]; dup {
			return
		}

		seen[href] = struct{}{}

		results = append(results, searchResult{
			URL:     href,
			Title:   strings.TrimSpace(s.Find("h3").First().Text()),
			Content: strings.TrimSpace(s.Find(".VwiC3b, .s, .st").First().Text()),
		})
	})

	return results, nil
}

// bingScrape is the last-resort backend; Bing's result markup is stabler than
// Google's but its snippets are shorter.
func (c *searchConnector) bingScrape(ctx context.Context, query string) ([]searchResult, error) {
	u := "https://www.bing.com/search?count=20&q=" + url.QueryEscape(query)

	body, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not parse result page: %w", err)
	}

	var results []searchResult

	doc.Find("li.b_algo").Each(func(_ int, s *goquery.Selection) {
		link := s.Find("h2 a").First()

		href, ok := link.Attr("href")
		if !ok || !strings.HasPrefix(href, "http") {
			return
		}

		results = append(results, searchResult{
			URL:     href,
			Title:   strings.TrimSpace(link.Text()),
			Content: strings.TrimSpace(s.Find("div.b_caption p, p").First().Text()),
		})
	})

	return results, nil
}

// unwrapRedirect resolves the engine's "/url?q=..." indirection.
func unwrapRedirect(href string) string {
	if !strings.HasPrefix(href, "/url?") {
		return href
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	return u.Query().Get("q")
}

func (c *searchConnector) buildQueries(target domain.TargetDescriptor) []string {
	name := strings.TrimSpace(target.CompanyName)

	var queries []string

	if name != "" {
		q := fmt.Sprintf("%q contact email", name)
		if target.IndustryHint != "" {
			q += " " + target.IndustryHint
		}

		queries = append(queries, q, fmt.Sprintf("%q founder email", name))
	}

	if target.Domain != "" {
		queries = append(queries, fmt.Sprintf("%q", "@"+target.Domain))
	}

	if len(queries) > c.options.MaxQueries {
		queries = queries[:c.options.MaxQueries]
	}

	return queries
}

func (c *searchConnector) avoided(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	for avoided := range c.avoid {
		if host == avoided || strings.HasSuffix(host, "."+avoided) {
			return true
		}
	}

	return false
}
