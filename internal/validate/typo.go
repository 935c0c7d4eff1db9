package validate

// suggestDomain returns the likely intended domain when host looks like a
// misspelling of a well-known provider, and ok=true. Domains that are
// themselves trusted providers are never flagged, otherwise single-edit
// neighbors among providers (e.g. "gmail.com" vs "mail.com") would shadow
// each other.
func suggestDomain(host string) (string, bool) {
	if IsTrustedProvider(host) {
		return "", false
	}

	if corrected, ok := typoCorrections[host]; ok {
		return corrected, true
	}

	for provider := range trustedProviders {
		if levenshtein(host, provider) == 1 {
			return provider, true
		}
	}

	return "", false
}

// levenshtein computes the edit distance between a and b with the classic
// two-row dynamic program.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i

		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(b)]
}
