package domain

import "time"

// Validation failure reasons. "Invalid" is an expected, common outcome, so
// reasons are first-class values rather than errors.
const (
	ReasonInvalidFormat    = "invalid_format"
	ReasonLocalTooLong     = "local_part_too_long"
	ReasonAddressTooLong   = "address_too_long"
	ReasonBadDots          = "misplaced_dots"
	ReasonBadDomainLabel   = "invalid_domain_label"
	ReasonPossibleTypo     = "possible_typo"
	ReasonDisposableDomain = "disposable_domain"
	ReasonProviderRule     = "provider_rule_violation"
	ReasonDomainNotFound   = "domain_not_found"
	ReasonNoDNSRecords     = "no_dns_records"
	ReasonOK               = "ok"
)

// CheckOutcome is the verdict of one validation stage.
type CheckOutcome struct {
	// Passed reports whether the stage accepted the address.
	Passed bool `json:"passed"`
	// Detail optionally explains the outcome (e.g. the matched provider rule).
	Detail string `json:"detail,omitempty"`
}

// ValidationChecks collects the per-stage outcomes of a validation pass.
// Stages that did not run (short-circuited or skipped) are nil.
type ValidationChecks struct {
	Syntax     *CheckOutcome `json:"syntax,omitempty"`
	Typo       *CheckOutcome `json:"typo,omitempty"`
	Disposable *CheckOutcome `json:"disposable,omitempty"`
	Trusted    *CheckOutcome `json:"trusted,omitempty"`
	DNS        *CheckOutcome `json:"dns,omitempty"`
	Role       *CheckOutcome `json:"role,omitempty"`
}

// ValidationResult is the verdict for a single address, independent of how
// the address was discovered. Results are cached per lowercased address and
// recomputed after TTL expiry, never mutated in place.
type ValidationResult struct {
	// Address is the validated address, lowercased and trimmed.
	Address string `json:"address"`
	// Valid reports whether the accumulated score reached the validity threshold.
	Valid bool `json:"valid"`
	// Score is the accumulated validation score, 0..100.
	Score int `json:"score"`
	// Confidence is Score/100 capped at 0.95.
	Confidence float64 `json:"confidence"`
	// Checks holds the per-stage outcomes.
	Checks ValidationChecks `json:"checks"`
	// Reason is the terminal classification (see Reason* constants).
	Reason string `json:"reason"`
	// Suggestions lists corrected addresses when a typo was detected.
	Suggestions []string `json:"suggestions,omitempty"`
	// Warnings lists soft findings (role account, DNS lookup trouble).
	Warnings []string `json:"warnings,omitempty"`
	// CheckedAt is when the validation pass ran.
	CheckedAt time.Time `json:"checkedAt"`
}
