package discovery

import (
	"errors"
	"fmt"
	"mailscout/internal/source"
	"mailscout/pkg/domain"
	"net/url"
	"strings"
)

// errEmptyTarget is returned when neither a company name nor a domain can be
// derived from the descriptor.
var errEmptyTarget = errors.New("target needs a company name or a domain")

// NormalizeTarget returns a canonical copy of the descriptor together with
// its target key, the identity under which concurrent runs for the same
// company are coalesced.
//
// The normalization rules are intentionally strict and opinionated:
//   - Trim whitespace from every field and drop empty profile URLs
//   - Lower-case the domain, strip a leading "www." and a trailing dot
//   - Derive the domain from the website URL when only the latter is given
//   - Derive the website URL ("https://<domain>") when only the domain is given
//   - The key is the domain when known, otherwise a slug of the company name
//
// If no usable identity remains after normalization, an error is returned.
func NormalizeTarget(target domain.TargetDescriptor) (domain.TargetDescriptor, string, error) {
	target.CompanyName = strings.Join(strings.Fields(target.CompanyName), " ")
	target.Domain = strings.TrimSpace(target.Domain)
	target.WebsiteURL = strings.TrimSpace(target.WebsiteURL)
	target.IndustryHint = strings.TrimSpace(target.IndustryHint)

	profiles := make([]string, 0, len(target.KnownProfileURLs))
	for _, p := range target.KnownProfileURLs {
		if p = strings.TrimSpace(p); p != "" {
			profiles = append(profiles, p)
		}
	}
	target.KnownProfileURLs = profiles

	if target.Domain == "" && target.WebsiteURL != "" {
		host, err := hostOf(target.WebsiteURL)
		if err != nil {
			return target, "", fmt.Errorf("could not parse website URL: %w", err)
		}
		target.Domain = host
	}

	target.Domain = normalizeDomain(target.Domain)

	if target.WebsiteURL == "" && target.Domain != "" {
		target.WebsiteURL = "https://" + target.Domain
	}

	if target.Domain != "" {
		return target, target.Domain, nil
	}

	key := source.Slugify(target.CompanyName)
	if key == "" {
		return target, "", errEmptyTarget
	}

	return target, key, nil
}

// hostOf extracts the hostname from a URL string, tolerating a missing scheme.
func hostOf(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err //nolint: wrapcheck
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("no host in %q", raw)
	}

	return u.Hostname(), nil
}

// normalizeDomain canonicalizes a bare domain. Values that still look like
// URLs (scheme or path attached) are reduced to their hostname first.
func normalizeDomain(d string) string {
	if d == "" {
		return ""
	}

	if strings.Contains(d, "://") || strings.Contains(d, "/") {
		if host, err := hostOf(d); err == nil {
			d = host
		}
	}

	d = strings.ToLower(d)
	d = strings.TrimSuffix(d, ".")
	d = strings.TrimPrefix(d, "www.")

	return d
}
