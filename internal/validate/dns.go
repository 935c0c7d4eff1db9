package validate

import (
	"context"
	"errors"
	"net"
)

// Resolver is the DNS surface the validator needs. It is satisfied by
// *net.Resolver and mocked in tests.
//
//go:generate mockgen -package mockvalidate -source=dns.go -destination=mock/mockvalidate.go *
type Resolver interface {
	// LookupMX returns the MX records of the given domain.
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
	// LookupHost returns the addresses of the given host.
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// NewResolver returns a Resolver backed by the default system resolver.
func NewResolver() Resolver { return net.DefaultResolver }

// isNotFound reports whether err means the name definitely does not exist, as
// opposed to a transient lookup failure.
func isNotFound(err error) bool {
	var dnsErr *net.DNSError

	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}
