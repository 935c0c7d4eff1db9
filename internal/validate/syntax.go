package validate

import (
	"regexp"
	"strings"

	"mailscout/pkg/domain"
)

const (
	maxLocalLen   = 64
	maxAddressLen = 254
	maxLabelLen   = 63
)

// addressPattern is deliberately pragmatic: it accepts the address shapes seen
// in the wild on web pages and leaves stricter judgement to the later stages.
var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// checkSyntax verifies the structural validity of address and returns the
// failure reason, or ReasonOK.
func checkSyntax(address string) string {
	if len(address) > maxAddressLen {
		return domain.ReasonAddressTooLong
	}

	if !addressPattern.MatchString(address) {
		return domain.ReasonInvalidFormat
	}

	local, host, _ := strings.Cut(address, "@")

	if len(local) > maxLocalLen {
		return domain.ReasonLocalTooLong
	}

	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return domain.ReasonBadDots
	}

	for _, label := range strings.Split(host, ".") {
		if label == "" || len(label) > maxLabelLen {
			return domain.ReasonBadDomainLabel
		}

		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return domain.ReasonBadDomainLabel
		}
	}

	return domain.ReasonOK
}
