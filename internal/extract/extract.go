// Package extract pulls candidate email addresses out of fetched pages.
// Several strategies run over the same document (mailto links, visible text,
// de-obfuscation, structured markup, raw source) and their finds are merged
// per address, keeping the most reliable extraction method.
package extract

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"mailscout/pkg/domain"
	"mailscout/pkg/metrics"
)

// contextWindow is how many bytes of surrounding text are kept as the
// context snippet of a match.
const contextWindow = 100

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	atTokens  = regexp.MustCompile(`(?i)\s*(?:\[\s*at\s*\]|\(\s*at\s*\)|\{\s*at\s*\})\s*`)
	dotTokens = regexp.MustCompile(`(?i)\s*(?:\[\s*dot\s*\]|\(\s*dot\s*\)|\{\s*dot\s*\})\s*`)
	wordForm  = regexp.MustCompile(`(?i)\b([a-z0-9._%+\-]+)\s+at\s+([a-z0-9\-]+)\s+dot\s+([a-z]{2,})\b`)

	cssContent = regexp.MustCompile(`content\s*:\s*["']([^"']*@[^"']*)["']`)
	whitespace = regexp.MustCompile(`\s+`)
)

// methodPriority ranks extraction methods by reliability. When the same
// address is found by several strategies the highest-ranked method wins.
//
//nolint: gochecknoglobals
var methodPriority = map[domain.ExtractionMethod]int{
	domain.MethodMailtoLink:       6,
	domain.MethodDirectoryProfile: 5,
	domain.MethodDeobfuscated:     4,
	domain.MethodStructured:       3,
	domain.MethodVisibleText:      2,
	domain.MethodHTMLOnly:         1,
}

// FromHTML extracts candidate addresses from one fetched page. It never
// fails: unparseable markup degrades to a raw text scan.
//
//nolint: funlen
func FromHTML(pageURL string, source domain.SourceType, markup string) []domain.CandidateEmail {
	c := &collector{found: map[string]*domain.CandidateEmail{}}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err == nil {
		// mailto links are the strongest signal a page can give.
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			if len(href) < len("mailto:") || !strings.EqualFold(href[:len("mailto:")], "mailto:") {
				return
			}

			addr, _, _ := strings.Cut(href[len("mailto:"):], "?")
			if unescaped, uErr := url.QueryUnescape(addr); uErr == nil {
				addr = unescaped
			}

			c.add(addr, domain.MethodMailtoLink, strings.TrimSpace(s.Text()))
		})

		// Structured markup: meta tags, data attributes, scripts, styles.
		doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
			if content, ok := s.Attr("content"); ok {
				c.scan(content, domain.MethodStructured)
			}
		})

		doc.Find("[data-email], [data-contact], [data-mail]").Each(func(_ int, s *goquery.Selection) {
			for _, attr := range []string{"data-email", "data-contact", "data-mail"} {
				if val, ok := s.Attr(attr); ok {
					c.scan(val, domain.MethodStructured)
				}
			}

			c.scan(s.Text(), domain.MethodStructured)
		})

		doc.Find("script, style").Each(func(_ int, s *goquery.Selection) {
			c.scan(s.Text(), domain.MethodStructured)
		})

		// Directory pages keep contact data in known regions.
		if sel, ok := profileSelector(hostOf(pageURL)); ok {
			doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
				c.scan(s.Text(), domain.MethodDirectoryProfile)
			})
		}

		// Visible text, with scripts and styles stripped first so addresses
		// only present in code don't masquerade as rendered text.
		doc.Find("script, style, noscript").Remove()
		text := whitespace.ReplaceAllString(doc.Text(), " ")

		for _, loc := range emailPattern.FindAllStringIndex(text, -1) {
			c.add(text[loc[0]:loc[1]], domain.MethodVisibleText, snippet(text, loc))
		}

		// De-obfuscated forms such as "name [at] acme [dot] com". Addresses
		// already found verbatim keep their original method.
		deob := deobfuscate(text)
		if deob != text {
			for _, loc := range emailPattern.FindAllStringIndex(deob, -1) {
				raw := deob[loc[0]:loc[1]]
				if addr, ok := cleanCandidate(raw); ok {
					if _, seen := c.found[addr]; seen {
						continue
					}
				}

				c.add(raw, domain.MethodDeobfuscated, snippet(deob, loc))
			}
		}
	}

	// Raw source scan catches addresses hidden in comments and attributes.
	for _, loc := range emailPattern.FindAllStringIndex(markup, -1) {
		c.add(markup[loc[0]:loc[1]], domain.MethodHTMLOnly, snippet(markup, loc))
	}

	for _, m := range cssContent.FindAllStringSubmatch(markup, -1) {
		c.scan(m[1], domain.MethodStructured)
	}

	now := time.Now()
	out := make([]domain.CandidateEmail, 0, len(c.found))

	for _, cand := range c.found {
		cand.SourceURL = pageURL
		cand.SourceType = source
		cand.DiscoveredAt = now

		metrics.CandidatesExtracted.WithLabelValues(string(cand.Method)).Inc()
		out = append(out, *cand)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })

	return out
}

type collector struct {
	found map[string]*domain.CandidateEmail
}

func (c *collector) add(raw string, method domain.ExtractionMethod, context string) {
	addr, ok := cleanCandidate(raw)
	if !ok {
		return
	}

	if existing, ok := c.found[addr]; ok && methodPriority[existing.Method] >= methodPriority[method] {
		return
	}

	if len(context) > 2*contextWindow {
		// the byte cut can land mid-rune
		context = strings.ToValidUTF8(context[:2*contextWindow], "")
	}

	c.found[addr] = &domain.CandidateEmail{Address: addr, Method: method, Context: strings.TrimSpace(context)}
}

// scan feeds every address-shaped match in text to the collector.
func (c *collector) scan(text string, method domain.ExtractionMethod) {
	for _, loc := range emailPattern.FindAllStringIndex(text, -1) {
		c.add(text[loc[0]:loc[1]], method, snippet(text, loc))
	}
}

// deobfuscate rewrites common address obfuscations back into plain form.
func deobfuscate(text string) string {
	t := atTokens.ReplaceAllString(text, "@")
	t = dotTokens.ReplaceAllString(t, ".")
	t = wordForm.ReplaceAllString(t, "$1@$2.$3")

	return t
}

func snippet(text string, loc []int) string {
	start := max(loc[0]-contextWindow, 0)
	end := min(loc[1]+contextWindow, len(text))

	return strings.TrimSpace(strings.ToValidUTF8(text[start:end], ""))
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	return u.Hostname()
}
