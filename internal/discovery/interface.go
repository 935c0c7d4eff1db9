package discovery

import (
	"context"
	"mailscout/internal/validate"
	"mailscout/pkg/domain"
)

//go:generate mockgen -package mockdiscovery -source=interface.go -destination=mock/mockdiscovery.go *

// Discoverer is the service layer for discovery runs. It owns persistence,
// job enqueueing and the validation verdict store; the actual crawling and
// extraction work is delegated to a Runner.
type Discoverer interface {
	// Enqueue stores a new discovery run for the target and schedules a
	// background job to process it.
	Enqueue(ctx context.Context, userID domain.UserID, target domain.TargetDescriptor) (*domain.Discovery, error)
	// UserDiscoveries returns a page of runs for the given user.
	UserDiscoveries(ctx context.Context,
		userID domain.UserID,
		status domain.DiscoveryStatus,
		cursor string,
		limit uint) ([]domain.Discovery, string, error)
	// Result fetches a single run by ID for the given user.
	Result(ctx context.Context, userID domain.UserID, id domain.DiscoveryID) (*domain.Discovery, error)
	// Delete removes a run belonging to the given user.
	Delete(ctx context.Context, userID domain.UserID, id domain.DiscoveryID) error
	// Validate runs a standalone validation pass for a single address, reusing
	// stored verdicts that are still fresh.
	Validate(ctx context.Context, address string, opts ...validate.CheckOption) (*domain.ValidationResult, error)
	// Discover executes the pipeline for a target and records the outcome on
	// all pending runs sharing the target key. It is called by the background
	// worker, not by API handlers.
	Discover(ctx context.Context, targetKey string, target domain.TargetDescriptor) error
}

// Runner executes the discovery pipeline for one target.
type Runner interface {
	// Run fetches pages from all sources, extracts, scores, deduplicates and
	// validates candidates, and returns the assembled result. An error return
	// is reserved for whole-run failures such as context cancellation.
	Run(ctx context.Context, target domain.TargetDescriptor) (*domain.DiscoveryResult, error)
}
