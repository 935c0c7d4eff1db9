package extract

import (
	"regexp"
	"strings"
)

const (
	maxLocalLen   = 64
	maxAddressLen = 254
)

// candidatePattern is the post-cleanup shape an address must have to survive.
var candidatePattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// glueRepair matches an address whose domain ran into the following word in
// the page text ("sales@acme.comSales" from missing whitespace in markup).
// The cut point is a known TLD followed by an uppercase letter.
var glueRepair = regexp.MustCompile(`^([a-zA-Z0-9.\-]+\.(?:com|org|net|edu|gov|io|co|ai|dev|app|info|biz|me))[A-Z]`)

// hexRun rejects tracking-pixel style locals such as "4f1c9a2b8e77d0aa".
var hexRun = regexp.MustCompile(`^[0-9a-f]{16,}$`)

//nolint: gochecknoglobals
var assetSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico", ".css", ".js", ".woff", ".woff2",
}

// placeholderDomains are documentation or template domains that never belong
// to the target company.
//
//nolint: gochecknoglobals
var placeholderDomains = map[string]struct{}{
	"example.com":     {},
	"example.org":     {},
	"example.net":     {},
	"domain.com":      {},
	"email.com":       {},
	"yourdomain.com":  {},
	"yourcompany.com": {},
	"yoursite.com":    {},
	"test.com":        {},
	"sentry.io":       {},
}

//nolint: gochecknoglobals
var entityReplacer = strings.NewReplacer(
	"&#64;", "@",
	"&#046;", ".",
	"&#46;", ".",
	"&amp;", "&",
	"&nbsp;", " ",
	"​", "",
)

// cleanCandidate normalizes a raw regex match into a plausible address.
// It decodes entities, strips wrapping punctuation, repairs word-glue damage
// and filters out asset filenames and placeholder domains. The second return
// is false when the match should be discarded.
func cleanCandidate(raw string) (string, bool) {
	s := entityReplacer.Replace(raw)
	s = strings.Trim(s, "<>()[]{}\"'`,;:!? \t\r\n")
	s = strings.TrimRight(s, ".")

	local, host, ok := strings.Cut(s, "@")
	if !ok || local == "" || host == "" {
		return "", false
	}

	if m := glueRepair.FindStringSubmatch(host); m != nil {
		host = m[1]
	}

	s = strings.ToLower(local + "@" + host)
	local, host, _ = strings.Cut(s, "@")

	if len(s) > maxAddressLen || len(local) > maxLocalLen {
		return "", false
	}

	if !candidatePattern.MatchString(s) {
		return "", false
	}

	// Retina image names like "logo@2x.png" match the email shape.
	if strings.HasPrefix(host, "2x.") || strings.HasPrefix(host, "3x.") {
		return "", false
	}

	for _, suffix := range assetSuffixes {
		if strings.HasSuffix(host, suffix) {
			return "", false
		}
	}

	if hexRun.MatchString(local) {
		return "", false
	}

	if _, bad := placeholderDomains[host]; bad {
		return "", false
	}

	return s, true
}
