package domain

import "time"

// SourceType classifies where a candidate email was found.
type SourceType string

const (
	// SourceWebsite marks candidates extracted from the company's own site.
	SourceWebsite SourceType = "website"
	// SourceDirectory marks candidates extracted from a known directory or
	// profile site (professional networks, code hosting, business listings).
	SourceDirectory SourceType = "directory"
	// SourceSearch marks candidates extracted from meta-search results.
	SourceSearch SourceType = "search"
)

// ExtractionMethod records which extraction strategy produced a candidate.
// Methods differ in reliability and feed the scoring engine accordingly.
type ExtractionMethod string

const (
	// MethodMailtoLink means the address came from a mailto: href.
	MethodMailtoLink ExtractionMethod = "mailto_link"
	// MethodDeobfuscated means the address was reassembled from an
	// obfuscated form such as "name [at] domain [dot] com".
	MethodDeobfuscated ExtractionMethod = "deobfuscated_text"
	// MethodStructured means the address was found in a data attribute,
	// meta tag, inline script, CSS content property or markup comment.
	MethodStructured ExtractionMethod = "structured_markup"
	// MethodHTMLOnly means the address appears in the raw markup but not in
	// the rendered text (usually hidden via CSS or JS).
	MethodHTMLOnly ExtractionMethod = "html_source_only"
	// MethodVisibleText means the address was matched in the rendered page text.
	MethodVisibleText ExtractionMethod = "visible_text"
	// MethodDirectoryProfile means the address came from a site-specific
	// profile region of a known directory page.
	MethodDirectoryProfile ExtractionMethod = "directory_profile"
)

// CandidateEmail is a single unvalidated address extracted from one fetched
// page. Candidates are immutable once created; the scoring engine consumes
// them and the deduplicator merges same-address candidates across sources.
type CandidateEmail struct {
	// Address is the extracted email address, lowercased.
	Address string `json:"address"`
	// SourceURL is the page the address was extracted from.
	SourceURL string `json:"sourceUrl"`
	// SourceType classifies the connector that fetched the page.
	SourceType SourceType `json:"sourceType"`
	// Method is the extraction strategy that found the address.
	Method ExtractionMethod `json:"extractionMethod"`
	// Context is a short window of page text around the match. It feeds the
	// context-keyword scoring signal and is useful when reviewing results.
	Context string `json:"contextSnippet,omitempty"`
	// DiscoveredAt is when the candidate was extracted.
	DiscoveredAt time.Time `json:"discoveredAt"`
}

// ScoredCandidate pairs a candidate with its confidence score.
// Score is always clamped to [0, 100].
type ScoredCandidate struct {
	CandidateEmail

	Score int `json:"score"`
}
