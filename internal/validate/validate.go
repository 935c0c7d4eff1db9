// Package validate implements the email validation pipeline: syntax, typo
// detection against well-known providers, disposable-domain screening,
// provider-specific rules, DNS deliverability and role-account tagging.
// Stages run in order and accumulate a score; hard failures short-circuit.
package validate

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"mailscout/pkg/cache"
	"mailscout/pkg/domain"
	"mailscout/pkg/logger"
	"mailscout/pkg/metrics"
)

// Score contributions per stage. An address needs at least the validity
// threshold to be considered deliverable; only trusted-provider addresses can
// reach a full score.
const (
	scoreSyntax     = 20
	scoreTypo       = 10
	scoreDisposable = 20
	scoreTrusted    = 30
	scoreDNS        = 20
	penaltyRole     = 10

	validThreshold = 50
	maxConfidence  = 0.95
)

// Validator checks deliverability of email addresses.
type Validator interface {
	// Validate runs the validation pipeline for address. An invalid address is
	// a normal outcome, not an error; errors are reserved for infrastructure
	// failures.
	Validate(ctx context.Context, address string, opts ...CheckOption) (*domain.ValidationResult, error)
}

// CheckOptions are per-call overrides for a single Validate call.
type CheckOptions struct {
	// SkipDNS disables the DNS stage for this call. The resulting verdict is
	// partial and bypasses the verdict cache in both directions.
	SkipDNS bool
}

// CheckOption mutates CheckOptions.
type CheckOption func(*CheckOptions)

// WithSkipDNS disables the DNS stage for one call.
func WithSkipDNS() CheckOption {
	return func(o *CheckOptions) { o.SkipDNS = true }
}

// NewCheckOptions folds opts into a CheckOptions value.
func NewCheckOptions(opts ...CheckOption) CheckOptions {
	var o CheckOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Options configures a Validator.
type Options struct {
	// CacheTTL is how long a verdict is reused before revalidating.
	CacheTTL time.Duration
	// DNSTimeout bounds each DNS lookup.
	DNSTimeout time.Duration
	// SkipDNS disables the DNS stage. Used by offline one-shot runs and tests.
	SkipDNS bool
}

type validator struct {
	resolver Resolver
	cache    cache.Cache[*domain.ValidationResult]
	options  Options
	now      func() time.Time
}

var _ Validator = (*validator)(nil)

// New creates a Validator using the given resolver and verdict cache.
func New(resolver Resolver, c cache.Cache[*domain.ValidationResult], options Options) Validator {
	if options.CacheTTL <= 0 {
		options.CacheTTL = 6 * time.Hour
	}

	if options.DNSTimeout <= 0 {
		options.DNSTimeout = 5 * time.Second
	}

	return &validator{
		resolver: resolver,
		cache:    c,
		options:  options,
		now:      time.Now,
	}
}

//nolint: funlen, cyclop
func (v *validator) Validate(ctx context.Context, address string, opts ...CheckOption) (*domain.ValidationResult, error) {
	co := NewCheckOptions(opts...)
	address = strings.ToLower(strings.TrimSpace(address))

	if !co.SkipDNS {
		if cached, ok := v.cache.Get(ctx, address); ok {
			metrics.ValidationCacheHits.WithLabelValues("hit").Inc()

			return cached, nil
		}

		metrics.ValidationCacheHits.WithLabelValues("miss").Inc()
	}

	res := &domain.ValidationResult{
		Address:   address,
		CheckedAt: v.now(),
	}

	// Syntax.
	if reason := checkSyntax(address); reason != domain.ReasonOK {
		res.Checks.Syntax = &domain.CheckOutcome{Passed: false, Detail: reason}

		return v.finish(ctx, res, reason, co), nil
	}

	res.Checks.Syntax = &domain.CheckOutcome{Passed: true}
	res.Score += scoreSyntax

	local, host, _ := strings.Cut(address, "@")

	// Typo detection against well-known providers.
	if suggestion, ok := suggestDomain(host); ok {
		res.Checks.Typo = &domain.CheckOutcome{Passed: false, Detail: "did you mean " + suggestion + "?"}
		res.Suggestions = append(res.Suggestions, local+"@"+suggestion)

		return v.finish(ctx, res, domain.ReasonPossibleTypo, co), nil
	}

	res.Checks.Typo = &domain.CheckOutcome{Passed: true}
	res.Score += scoreTypo

	// Disposable mailbox services.
	if IsDisposableDomain(host) {
		res.Checks.Disposable = &domain.CheckOutcome{Passed: false, Detail: host}

		return v.finish(ctx, res, domain.ReasonDisposableDomain, co), nil
	}

	res.Checks.Disposable = &domain.CheckOutcome{Passed: true}
	res.Score += scoreDisposable

	// Provider-specific rules for trusted mailbox providers.
	if rules, ok := trustedProviders[host]; ok {
		if detail, ok := checkProviderRules(local, rules); !ok {
			res.Checks.Trusted = &domain.CheckOutcome{Passed: false, Detail: detail}

			return v.finish(ctx, res, domain.ReasonProviderRule, co), nil
		}

		res.Checks.Trusted = &domain.CheckOutcome{Passed: true, Detail: host}
		res.Score += scoreTrusted
	}

	// DNS deliverability.
	if !v.options.SkipDNS && !co.SkipDNS {
		outcome, reason := v.checkDNS(ctx, host)
		res.Checks.DNS = outcome

		if reason != domain.ReasonOK {
			return v.finish(ctx, res, reason, co), nil
		}

		if outcome.Detail != "" && !outcome.Passed {
			res.Warnings = append(res.Warnings, outcome.Detail)
		}

		res.Score += scoreDNS
	}

	// Role accounts are deliverable but less valuable for outreach.
	if IsRoleAccount(local) {
		res.Checks.Role = &domain.CheckOutcome{Passed: false, Detail: local}
		res.Score -= penaltyRole
		res.Warnings = append(res.Warnings, "role account: "+local)
	} else {
		res.Checks.Role = &domain.CheckOutcome{Passed: true}
	}

	return v.finish(ctx, res, domain.ReasonOK, co), nil
}

// checkDNS verifies the domain resolves to a mail host. Missing MX records
// fall back to an A lookup since plenty of small domains receive mail on
// their apex. A definitive NXDOMAIN is terminal; transient resolver failures
// only produce a warning.
func (v *validator) checkDNS(ctx context.Context, host string) (*domain.CheckOutcome, string) {
	ctx, cancel := context.WithTimeout(ctx, v.options.DNSTimeout)
	defer cancel()

	mx, err := v.resolver.LookupMX(ctx, host)
	if err == nil && len(mx) > 0 {
		return &domain.CheckOutcome{Passed: true, Detail: "mx"}, domain.ReasonOK
	}

	if err != nil && isNotFound(err) {
		// No MX record at all. Try the apex before giving up.
		if addrs, aErr := v.resolver.LookupHost(ctx, host); aErr == nil && len(addrs) > 0 {
			return &domain.CheckOutcome{Passed: true, Detail: "a"}, domain.ReasonOK
		} else if aErr != nil && isNotFound(aErr) {
			return &domain.CheckOutcome{Passed: false, Detail: "domain does not resolve"}, domain.ReasonDomainNotFound
		}
	}

	if err != nil {
		logger.Debug(ctx, "dns lookup failed, treating as deliverable",
			zap.String("domain", host), zap.Error(err))

		return &domain.CheckOutcome{Passed: false, Detail: "dns lookup failed: " + err.Error()}, domain.ReasonOK
	}

	// MX lookup succeeded but returned no records.
	addrs, aErr := v.resolver.LookupHost(ctx, host)
	if aErr == nil && len(addrs) > 0 {
		return &domain.CheckOutcome{Passed: true, Detail: "a"}, domain.ReasonOK
	}

	// A transient A-lookup failure is not evidence the domain is dead.
	if aErr != nil && !isNotFound(aErr) {
		logger.Debug(ctx, "dns lookup failed, treating as deliverable",
			zap.String("domain", host), zap.Error(aErr))

		return &domain.CheckOutcome{Passed: false, Detail: "dns lookup failed: " + aErr.Error()}, domain.ReasonOK
	}

	return &domain.CheckOutcome{Passed: false, Detail: "no mail hosts"}, domain.ReasonNoDNSRecords
}

// finish seals the verdict, records metrics and stores it in the cache.
// Partial verdicts (per-call SkipDNS) stay out of the cache.
func (v *validator) finish(
	ctx context.Context,
	res *domain.ValidationResult,
	reason string,
	co CheckOptions,
) *domain.ValidationResult {
	res.Reason = reason
	res.Valid = reason == domain.ReasonOK && res.Score >= validThreshold
	res.Confidence = min(float64(res.Score)/100, maxConfidence)

	if res.Confidence < 0 {
		res.Confidence = 0
	}

	metrics.Validations.WithLabelValues(reason).Inc()

	if !co.SkipDNS {
		v.cache.Set(ctx, res.Address, res, v.options.CacheTTL)
	}

	return res
}

// checkProviderRules applies the provider's local-part constraints and
// returns a human-readable detail on violation.
func checkProviderRules(local string, rules providerRules) (string, bool) {
	if rules.forbidConsecutiveDots && strings.Contains(local, "..") {
		return "consecutive dots in local part", false
	}

	if rules.minEffectiveLocal > 0 {
		effective := strings.ReplaceAll(local, ".", "")
		if len(effective) < rules.minEffectiveLocal {
			return "local part too short for provider", false
		}
	}

	return "", true
}
