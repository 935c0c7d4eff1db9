package extract

import "strings"

// profileRegions maps well-known directory hosts to the CSS selectors of the
// page regions where contact data lives. Scoping the scan to these regions
// keeps directory noise (commenters, unrelated profiles) out of the results.
//
//nolint: gochecknoglobals
var profileRegions = []struct {
	hostSuffix string
	selector   string
}{
	{hostSuffix: "linkedin.com", selector: ".ci-email, .contact-info, .top-card-layout__entity-info"},
	{hostSuffix: "about.me", selector: ".contact-item, .profile-contact"},
	{hostSuffix: "medium.com", selector: ".author-info, .pw-author-info"},
	{hostSuffix: "github.com", selector: ".vcard-detail, [itemprop=email]"},
	{hostSuffix: "crunchbase.com", selector: ".contact-section, .profile-header"},
	{hostSuffix: "f6s.com", selector: ".profile-contact, .member-details"},
	{hostSuffix: "angel.co", selector: ".contact, .startup-link"},
	{hostSuffix: "wellfound.com", selector: ".contact, .startup-link"},
}

// profileSelector returns the contact-region selector for host if it belongs
// to a known directory site.
func profileSelector(host string) (string, bool) {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")

	for _, r := range profileRegions {
		if host == r.hostSuffix || strings.HasSuffix(host, "."+r.hostSuffix) {
			return r.selector, true
		}
	}

	return "", false
}
