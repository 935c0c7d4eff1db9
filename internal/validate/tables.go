package validate

// providerRules captures per-provider constraints on the local part for
// well-known mailbox providers. Addresses on these providers get a score
// boost, but only when they satisfy the provider's own rules.
type providerRules struct {
	// minEffectiveLocal is the minimum local-part length after removing dots.
	// Zero means no minimum.
	minEffectiveLocal int
	// forbidConsecutiveDots rejects ".." inside the local part.
	forbidConsecutiveDots bool
}

//nolint: gochecknoglobals
var trustedProviders = map[string]providerRules{
	"gmail.com":      {minEffectiveLocal: 6, forbidConsecutiveDots: true},
	"googlemail.com": {minEffectiveLocal: 6, forbidConsecutiveDots: true},
	"yahoo.com":      {forbidConsecutiveDots: true},
	"outlook.com":    {},
	"hotmail.com":    {},
	"live.com":       {},
	"msn.com":        {},
	"icloud.com":     {},
	"me.com":         {},
	"aol.com":        {},
	"protonmail.com": {},
	"proton.me":      {},
	"zoho.com":       {},
	"gmx.com":        {},
	"gmx.net":        {},
	"mail.com":       {},
	"yandex.com":     {},
	"fastmail.com":   {},
}

// typoCorrections maps frequently mistyped provider domains to their intended
// spelling. Checked before the edit-distance pass so multi-edit typos are
// still caught.
//
//nolint: gochecknoglobals
var typoCorrections = map[string]string{
	"gmial.com":    "gmail.com",
	"gmai.com":     "gmail.com",
	"gamil.com":    "gmail.com",
	"gmal.com":     "gmail.com",
	"gmaill.com":   "gmail.com",
	"gmail.co":     "gmail.com",
	"gmail.cm":     "gmail.com",
	"yaho.com":     "yahoo.com",
	"yahooo.com":   "yahoo.com",
	"yhaoo.com":    "yahoo.com",
	"yahoo.co":     "yahoo.com",
	"hotmial.com":  "hotmail.com",
	"hotmal.com":   "hotmail.com",
	"hotmil.com":   "hotmail.com",
	"homail.com":   "hotmail.com",
	"outlok.com":   "outlook.com",
	"outloo.com":   "outlook.com",
	"outlookk.com": "outlook.com",
	"iclud.com":    "icloud.com",
	"icloud.co":    "icloud.com",
}

//nolint: gochecknoglobals
var disposableDomains = map[string]struct{}{
	"10minutemail.com":  {},
	"10minutemail.net":  {},
	"guerrillamail.com": {},
	"guerrillamail.net": {},
	"mailinator.com":    {},
	"maildrop.cc":       {},
	"tempmail.com":      {},
	"temp-mail.org":     {},
	"throwaway.email":   {},
	"yopmail.com":       {},
	"trashmail.com":     {},
	"getnada.com":       {},
	"sharklasers.com":   {},
	"dispostable.com":   {},
	"fakeinbox.com":     {},
	"mailnesia.com":     {},
	"mintemail.com":     {},
	"spamgourmet.com":   {},
	"mytemp.email":      {},
	"burnermail.io":     {},
}

// roleAccounts are local parts that address a function rather than a person.
// They are flagged with a score penalty but never rejected outright.
//
//nolint: gochecknoglobals
var roleAccounts = map[string]struct{}{
	"admin":         {},
	"administrator": {},
	"info":          {},
	"contact":       {},
	"hello":         {},
	"support":       {},
	"help":          {},
	"office":        {},
	"team":          {},
	"sales":         {},
	"marketing":     {},
	"press":         {},
	"media":         {},
	"hr":            {},
	"jobs":          {},
	"careers":       {},
	"billing":       {},
	"accounts":      {},
	"webmaster":     {},
	"postmaster":    {},
	"hostmaster":    {},
	"abuse":         {},
	"security":      {},
	"noreply":       {},
	"no-reply":      {},
	"donotreply":    {},
}

// IsRoleAccount reports whether local addresses a function rather than a
// person (e.g. "info", "support").
func IsRoleAccount(local string) bool {
	_, ok := roleAccounts[local]

	return ok
}

// IsTrustedProvider reports whether domain is a well-known mailbox provider.
func IsTrustedProvider(domain string) bool {
	_, ok := trustedProviders[domain]

	return ok
}

// IsDisposableDomain reports whether domain belongs to a known disposable
// mailbox service.
func IsDisposableDomain(domain string) bool {
	_, ok := disposableDomains[domain]

	return ok
}
