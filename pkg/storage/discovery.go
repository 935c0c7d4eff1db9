package storage

import (
	"context"
	"time"

	"mailscout/pkg/domain"
)

// DiscoveryUpdates describes a set of optional fields that can be applied to
// existing discovery rows during an update. Only provided fields are changed.
type DiscoveryUpdates struct {
	// Status is the new status to set for the discovery.
	Status domain.DiscoveryStatus
	// Result, when provided, replaces the stored result payload.
	Result *domain.DiscoveryResult
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// exceed this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// UserDiscoveries groups a page of discoveries returned for a user together
// with an optional NextCursor used for pagination.
type UserDiscoveries struct {
	// Discoveries contains the current page of discovery records.
	Discoveries []domain.Discovery
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// DiscoveryStorage defines CRUD and query operations related to discovery
// runs. Implementations should ensure idempotency and proper handling of
// soft-deletes where applicable.
type DiscoveryStorage interface {
	// StoreDiscoveries inserts one or more discoveries and returns the stored
	// rows as they exist in the database (including generated fields).
	StoreDiscoveries(ctx context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error)
	// UpdatePendingByTargetKey updates all pending discoveries for the given
	// target key using the provided field set.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment would exceed MaxAttempts; otherwise
	//   status remains unchanged (i.e., stays Pending).
	UpdatePendingByTargetKey(ctx context.Context, targetKey string, updates DiscoveryUpdates) error
	// PendingCountByTargetKey returns the total number of pending discoveries
	// for the given target key across all users. Soft-deleted records are
	// excluded from the count.
	PendingCountByTargetKey(ctx context.Context, targetKey string) (int64, error)
	// UpdateDiscoveryByID updates a single discovery identified by its ID and
	// returns the updated row. The update ignores soft-deleted rows and sets
	// updated_at automatically. Only provided fields are changed.
	UpdateDiscoveryByID(ctx context.Context, id domain.DiscoveryID, updates DiscoveryUpdates) (*domain.Discovery, error)
	// DeleteDiscovery performs a soft delete for the given discovery ID and
	// user ID and returns the deleted discovery, or nil if it was not found.
	DeleteDiscovery(ctx context.Context, userID domain.UserID, id domain.DiscoveryID) (*domain.Discovery, error)
	// UserDiscoveries returns a page of discoveries for a user created before
	// the optional cursor time, limited by the given limit. If status is
	// non-empty, results are filtered to records with the given status.
	UserDiscoveries(ctx context.Context,
		userID domain.UserID,
		status domain.DiscoveryStatus,
		cursor time.Time,
		limit uint) (UserDiscoveries, error)
	// DiscoveryByID fetches a discovery by its ID for the given user, excluding
	// soft-deleted records. Returns nil when not found.
	DiscoveryByID(ctx context.Context, userID domain.UserID, id domain.DiscoveryID) (*domain.Discovery, error)
	// LastCompletedByTargetKey returns the most recent completed discovery for
	// a given target key across all users. Returns nil when none exists.
	LastCompletedByTargetKey(ctx context.Context, targetKey string) (*domain.Discovery, error)
}
