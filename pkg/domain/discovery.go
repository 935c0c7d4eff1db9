package domain

import (
	"time"

	"github.com/google/uuid"
)

// DiscoveryID uniquely identifies a discovery run.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DiscoveryID uuid.UUID

// DiscoveryStatus represents the lifecycle state of a discovery run.
type DiscoveryStatus string

const (
	// DiscoveryStatusPending indicates the run has been enqueued but not processed yet.
	DiscoveryStatusPending DiscoveryStatus = "PENDING"
	// DiscoveryStatusCompleted indicates the run finished and a result is available.
	DiscoveryStatusCompleted DiscoveryStatus = "COMPLETED"
	// DiscoveryStatusFailed indicates the run ended with an error; see LastError and Attempts.
	DiscoveryStatusFailed DiscoveryStatus = "FAILED"
)

// SourceError records a non-fatal failure for a single URL or backend during
// a discovery run. Source errors never abort a run; they are carried in the
// result so the caller can judge coverage.
type SourceError struct {
	// URL is the address or backend that failed.
	URL string `json:"url"`
	// Source classifies the connector the failure occurred in.
	Source SourceType `json:"source"`
	// Reason is a short human-readable failure description.
	Reason string `json:"reason"`
}

// EmailHit is one merged, ranked address in a discovery result. Candidates
// for the same lowercase address across sources collapse into a single hit.
type EmailHit struct {
	// Address is the lowercased email address. Unique within a result.
	Address string `json:"address"`
	// Role is a human-readable annotation derived from the local part
	// (e.g. "Sales", "Founder"). Best effort.
	Role string `json:"role,omitempty"`
	// Sources lists every source type that produced the address.
	Sources []string `json:"sources"`
	// Methods lists every extraction method that produced the address.
	Methods []string `json:"extractionMethods"`
	// Confidence is the maximum score any single source contributed, 0..100.
	Confidence int `json:"confidence"`
	// Verified is true when the address came from a mailto link or passed
	// full validation.
	Verified bool `json:"verified"`
	// Validation holds the validation verdict for the address, when the
	// orchestrator ran one.
	Validation *ValidationResult `json:"validation,omitempty"`
	// DiscoveredAt is the earliest time any source produced the address.
	DiscoveredAt time.Time `json:"discoveredAt"`
}

// DiscoveryStats aggregates per-run counters.
type DiscoveryStats struct {
	// PagesFetched is the number of pages successfully fetched across connectors.
	PagesFetched int `json:"pagesFetched"`
	// SourcesQueried is the number of connectors dispatched.
	SourcesQueried int `json:"sourcesQueried"`
	// SourcesFailed is the number of connectors that returned no pages at all.
	SourcesFailed int `json:"sourcesFailed"`
	// CandidatesFound is the raw candidate count before scoring and dedup.
	CandidatesFound int `json:"candidatesFound"`
}

// DiscoveryResult is the durable output of one discovery run.
//
// Invariants: Emails contains each lowercase address at most once, sorted by
// descending confidence with ties broken by earliest discovery time.
type DiscoveryResult struct {
	// Emails is the ranked list of merged hits.
	Emails []EmailHit `json:"emails"`
	// Errors lists the per-URL soft failures encountered during the run.
	Errors []SourceError `json:"errors,omitempty"`
	// Stats carries per-run counters.
	Stats DiscoveryStats `json:"stats"`
	// Timestamp is when the run finished.
	Timestamp time.Time `json:"timestamp"`
}

// Discovery represents a single discovery request and its current state as
// persisted by the service layer.
type Discovery struct {
	// ID is the unique identifier of the run.
	ID DiscoveryID `json:"id"`
	// UserID is the identifier of the user who requested the run.
	UserID UserID `json:"userId"`

	// Target describes the company being discovered.
	Target TargetDescriptor `json:"target"`
	// TargetKey is the normalized identity of the target used to coalesce
	// concurrent runs for the same company (the domain when known, otherwise
	// a slug of the company name).
	TargetKey string `json:"-"`
	// Status is the current lifecycle state of the run.
	Status DiscoveryStatus `json:"status"`
	// Result contains the latest known outcome of the run.
	Result DiscoveryResult `json:"result"`

	// Attempts is the number of times the system has tried to process this run.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent processing error, if any.
	LastError string `json:"-"`

	// CreatedAt is when the run was requested.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the run was last updated (status or result changed).
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the run was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
