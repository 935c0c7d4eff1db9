package storage

import (
	"context"
	"time"

	"mailscout/pkg/domain"
)

// ValidationStorage persists validation verdicts so they survive restarts and
// can be shared across instances. Rows are keyed by lowercased address.
type ValidationStorage interface {
	// UpsertValidation stores the verdict for its address, replacing any
	// previous row.
	UpsertValidation(ctx context.Context, result domain.ValidationResult) error
	// ValidationByAddress returns the stored verdict for the address when it
	// was checked at or after notBefore. Returns nil when no usable row exists.
	ValidationByAddress(ctx context.Context, address string, notBefore time.Time) (*domain.ValidationResult, error)
}
