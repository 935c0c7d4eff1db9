package domain

// TargetDescriptor identifies the company a discovery run is about. Only
// CompanyName is strictly required; Domain and WebsiteURL sharpen the website
// connector and the domain-relationship scoring signal considerably.
type TargetDescriptor struct {
	// CompanyName is the human-readable company name, e.g. "Acme Corp".
	CompanyName string `json:"companyName"`
	// Domain is the company's primary domain, e.g. "acme.com". Optional.
	Domain string `json:"domain,omitempty"`
	// WebsiteURL is the company homepage. When empty it is derived from Domain.
	WebsiteURL string `json:"websiteUrl,omitempty"`
	// KnownProfileURLs are directory/profile pages the caller already knows
	// about (e.g. a LinkedIn company page). They are fetched in addition to
	// the generated profile URLs.
	KnownProfileURLs []string `json:"knownProfileUrls,omitempty"`
	// IndustryHint is an optional classification hint (e.g. from an upstream
	// content layer) used to broaden search queries. Discovery works without it.
	IndustryHint string `json:"industryHint,omitempty"`
}
