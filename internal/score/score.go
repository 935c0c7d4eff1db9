// Package score ranks candidate emails by how likely they are to be a useful
// outreach contact for the target company. Scoring is additive over
// independent signals (local part, domain relationship, surrounding context,
// source URL, extraction method, address shape) and clamped to [0, 100].
package score

import (
	"regexp"
	"sort"
	"strings"

	"mailscout/pkg/domain"
)

const (
	baseScore = 60
	maxScore  = 100

	// DefaultMinScore is the cut-off below which candidates are dropped.
	DefaultMinScore = 40
)

// Engine scores and ranks candidates against a target descriptor.
type Engine struct {
	minScore int
}

// Options configures an Engine.
type Options struct {
	// MinScore drops candidates scoring below it. Zero means DefaultMinScore.
	MinScore int
}

// New creates a scoring Engine.
func New(options Options) *Engine {
	if options.MinScore <= 0 {
		options.MinScore = DefaultMinScore
	}

	return &Engine{minScore: options.MinScore}
}

// Score computes the confidence score for a single candidate.
func (e *Engine) Score(candidate domain.CandidateEmail, target domain.TargetDescriptor) domain.ScoredCandidate {
	local, host, _ := strings.Cut(candidate.Address, "@")

	s := baseScore
	s += localPartSignal(local)
	s += domainSignal(host, target)
	s += contextSignal(candidate.Context)
	s += sourceSignal(candidate.SourceURL)
	s += methodPoints[candidate.Method]
	s += shapeSignal(local)

	if s < 0 {
		s = 0
	}

	if s > maxScore {
		s = maxScore
	}

	return domain.ScoredCandidate{CandidateEmail: candidate, Score: s}
}

// Rank scores all candidates, drops those below the minimum and returns the
// rest ordered by descending score with ties broken by address.
func (e *Engine) Rank(candidates []domain.CandidateEmail, target domain.TargetDescriptor) []domain.ScoredCandidate {
	out := make([]domain.ScoredCandidate, 0, len(candidates))

	for _, c := range candidates {
		if scored := e.Score(c, target); scored.Score >= e.minScore {
			out = append(out, scored)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Address < out[j].Address
	})

	return out
}

// prefixCategory holds local-part prefixes sharing a score contribution.
type prefixCategory struct {
	points   int
	label    string
	prefixes []string
}

// Categories are checked in order; the first matching prefix wins, so
// executive prefixes shadow the broader business set.
//
//nolint: gochecknoglobals
var prefixCategories = []prefixCategory{
	{points: 35, label: "Executive", prefixes: []string{
		"ceo", "cto", "cfo", "coo", "founder", "cofounder", "co-founder", "president", "owner", "director",
	}},
	{points: 25, label: "Business", prefixes: []string{
		"sales", "marketing", "business", "partnerships", "partners", "bd", "growth", "press", "media",
	}},
	{points: 20, label: "Contact", prefixes: []string{
		"contact", "info", "hello", "office", "mail", "enquiries", "inquiries",
	}},
	{points: 15, label: "Technical", prefixes: []string{
		"dev", "engineering", "tech", "it", "ops", "support",
	}},
	{points: -20, label: "", prefixes: []string{
		"test", "demo", "example", "noreply", "no-reply", "donotreply", "unsubscribe", "mailer-daemon",
	}},
}

//nolint: gochecknoglobals
var personalProviders = map[string]struct{}{
	"gmail.com":   {},
	"yahoo.com":   {},
	"hotmail.com": {},
	"outlook.com": {},
	"aol.com":     {},
	"icloud.com":  {},
	"gmx.com":     {},
	"mail.com":    {},
}

// contextKeywords weight the text surrounding a match.
//
//nolint: gochecknoglobals
var contextKeywords = []struct {
	points   int
	keywords []string
}{
	{points: -25, keywords: []string{"unsubscribe", "noreply", "do not reply"}},
	{points: 15, keywords: []string{"contact us", "get in touch", "reach out", "contact"}},
	{points: 12, keywords: []string{"founder", "ceo", "chief executive"}},
	{points: 10, keywords: []string{"about us", "our team", "leadership", "team"}},
	{points: 8, keywords: []string{"press", "media inquiries"}},
}

//nolint: gochecknoglobals
var sourceHosts = []struct {
	points    int
	fragments []string
}{
	{points: 12, fragments: []string{"f6s.com"}},
	{points: 10, fragments: []string{"linkedin.com", "crunchbase.com"}},
	{points: 8, fragments: []string{"about.me", "github.com"}},
	{points: -10, fragments: []string{"wikipedia.org", "reddit.com"}},
}

// methodPoints weight how the address was extracted. A mailto link is an
// explicit publication; an address only present in raw markup or visible
// prose may be stale or incidental.
//
//nolint: gochecknoglobals
var methodPoints = map[domain.ExtractionMethod]int{
	domain.MethodMailtoLink:       15,
	domain.MethodDirectoryProfile: 10,
	domain.MethodDeobfuscated:     8,
	domain.MethodStructured:       5,
	domain.MethodHTMLOnly:         2,
	domain.MethodVisibleText:      0,
}

var (
	namePattern  = regexp.MustCompile(`^[a-z]{2,}\.[a-z]{2,}$`)
	digitPattern = regexp.MustCompile(`\d{4,}`)
)

func localPartSignal(local string) int {
	for _, cat := range prefixCategories {
		for _, p := range cat.prefixes {
			if local == p || strings.HasPrefix(local, p+".") || strings.HasPrefix(local, p+"-") || strings.HasPrefix(local, p+"_") {
				return cat.points
			}
		}
	}

	return 0
}

func domainSignal(host string, target domain.TargetDescriptor) int {
	if _, personal := personalProviders[host]; personal {
		return -15
	}

	targetDomain := strings.ToLower(target.Domain)
	if targetDomain != "" {
		if host == targetDomain || strings.HasSuffix(host, "."+targetDomain) {
			return 20
		}
	}

	// A domain embedding the company name is likely related infrastructure
	// (mail subdomains, country TLD variants).
	token := companyToken(target.CompanyName)
	if token != "" && strings.Contains(host, token) {
		return 10
	}

	return 0
}

func contextSignal(context string) int {
	if context == "" {
		return 0
	}

	context = strings.ToLower(context)

	total := 0

	for _, group := range contextKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(context, kw) {
				total += group.points

				break
			}
		}
	}

	return total
}

func sourceSignal(sourceURL string) int {
	u := strings.ToLower(sourceURL)

	total := 0

	for _, group := range sourceHosts {
		for _, fragment := range group.fragments {
			if strings.Contains(u, fragment) {
				total += group.points

				break
			}
		}
	}

	if strings.Contains(u, "/contact") || strings.Contains(u, "/about") || strings.Contains(u, "/team") {
		total += 8
	}

	return total
}

func shapeSignal(local string) int {
	total := 0

	// firstname.lastname is the classic corporate pattern.
	if namePattern.MatchString(local) {
		total += 5
	}

	if digitPattern.MatchString(local) {
		total -= 10
	}

	return total
}

// companyToken reduces a company name to a single comparable token
// ("Acme Corp Inc." becomes "acme").
func companyToken(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	first, _, _ := strings.Cut(name, " ")
	first = strings.Trim(first, ".,")

	if len(first) < 3 {
		return ""
	}

	return first
}

// RoleLabel derives a human-readable role annotation from the local part of
// an address ("sales" becomes "Business", "ceo" becomes "Executive").
func RoleLabel(address string) string {
	local, _, _ := strings.Cut(address, "@")

	for _, cat := range prefixCategories {
		if cat.label == "" {
			continue
		}

		for _, p := range cat.prefixes {
			if local == p || strings.HasPrefix(local, p+".") || strings.HasPrefix(local, p+"-") || strings.HasPrefix(local, p+"_") {
				return cat.label
			}
		}
	}

	return ""
}
