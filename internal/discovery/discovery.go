// Package discovery is the service layer for email discovery runs. It stores
// run requests, coalesces concurrent requests for the same company through
// unique background jobs, executes the pipeline and records outcomes.
package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mailscout/internal/config"
	"mailscout/internal/validate"
	"mailscout/pkg/domain"
	"mailscout/pkg/logger"
	"mailscout/pkg/metrics"
	"mailscout/pkg/serrors"
	"mailscout/pkg/storage"

	"go.uber.org/zap"
)

// Options configure how discovery jobs are enqueued and how results are cached.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing a discovery job before marking it failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a completed result makes new
	// requests for the same target reuse that result instead of enqueueing a
	// duplicate job.
	ResultCacheTTL time.Duration
	// ValidationCacheTTL is how long stored validation verdicts are reused for
	// standalone validation requests.
	ValidationCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:        cfg.Discovery.MaxAttempts,
		ResultCacheTTL:     cfg.Discovery.ResultCacheTTL,
		ValidationCacheTTL: cfg.Validator.CacheTTL,
	}
}

// discoverer is the concrete implementation of the Discoverer interface.
// It coordinates persistence with the storage layer, job enqueueing and the
// pipeline runner.
type discoverer struct {
	options   Options
	storage   storage.Storage
	runner    Runner
	validator validate.Validator
}

// Enqueue stores a new discovery run for the given target and user, and
// attempts to enqueue a background job to process it. If a recent completed
// result exists for the same target key (within ResultCacheTTL), the new run
// is immediately marked as completed with that result.
func (d discoverer) Enqueue(
	ctx context.Context,
	userID domain.UserID,
	target domain.TargetDescriptor,
) (*domain.Discovery, error) {
	target, targetKey, err := NormalizeTarget(target)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid target")
	}

	var discovery *domain.Discovery
	if err := d.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreDiscoveries(ctx, domain.Discovery{
			UserID:    userID,
			Target:    target,
			TargetKey: targetKey,
			Status:    domain.DiscoveryStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store discovery: %w", err)
		}
		discovery = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			TargetKey:       targetKey,
			Target:          target,
			maxAttempts:     d.options.MaxAttempts,
			uniqueJobPeriod: d.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, it means that another job already exists for
		// this target. river unique jobs prevent duplicate jobs per target key.
		if !jobAdded {
			// if the existing job already completed, get its result from db
			// and update the new run
			lastResult, err := tx.LastCompletedByTargetKey(ctx, targetKey)
			if err != nil {
				return fmt.Errorf("could not get last completed discovery: %w", err)
			}

			if lastResult != nil {
				updated, err := tx.UpdateDiscoveryByID(ctx, discovery.ID, storage.DiscoveryUpdates{
					Status: domain.DiscoveryStatusCompleted,
					Result: &lastResult.Result,
				})
				if err != nil {
					return fmt.Errorf("could not update discovery: %w", err)
				}
				discovery = updated
			} // else: the job is in the queue and will be processed soon.
			// Job will automatically update all pending runs by target key upon completion.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue discovery: %w", err)
	}

	return discovery, nil
}

// UserDiscoveries returns a page of runs for the given user filtered by
// status. It supports cursor-based pagination using an RFC3339 timestamp
// string and returns the next cursor when more results are available.
func (d discoverer) UserDiscoveries(ctx context.Context,
	userID domain.UserID,
	status domain.DiscoveryStatus,
	cursor string,
	limit uint) ([]domain.Discovery, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := d.storage.UserDiscoveries(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user discoveries: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Discoveries, next, nil
}

// Result fetches a single run by ID for the given user. It returns a
// not-found error when no matching run exists.
func (d discoverer) Result(
	ctx context.Context,
	userID domain.UserID,
	id domain.DiscoveryID,
) (*domain.Discovery, error) {
	res, err := d.storage.DiscoveryByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get discovery result: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "discovery not found")
	}

	return res, nil
}

// Delete removes a run belonging to the given user. If the run does not
// exist, a not-found error is returned. Jobs are not cancelled here because
// other pending runs may still depend on the same target job.
func (d discoverer) Delete(ctx context.Context, userID domain.UserID, id domain.DiscoveryID) error {
	res, err := d.storage.DeleteDiscovery(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete discovery: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "discovery not found")
	}

	// we don't delete jobs from the queue here because there might be other runs
	// depending on the job. the worker makes sure there are still pending runs
	// for the target key before processing.

	return nil
}

// Validate runs a standalone validation pass for a single address. Stored
// verdicts younger than ValidationCacheTTL are reused; fresh verdicts are
// persisted best effort. Partial verdicts (SkipDNS) bypass the store in both
// directions.
func (d discoverer) Validate(
	ctx context.Context,
	address string,
	opts ...validate.CheckOption,
) (*domain.ValidationResult, error) {
	address = strings.ToLower(strings.TrimSpace(address))
	if address == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "address is required")
	}

	co := validate.NewCheckOptions(opts...)

	if !co.SkipDNS {
		stored, err := d.storage.ValidationByAddress(ctx, address, time.Now().Add(-d.options.ValidationCacheTTL))
		if err != nil {
			return nil, fmt.Errorf("could not get stored validation: %w", err)
		}
		if stored != nil {
			return stored, nil
		}
	}

	res, err := d.validator.Validate(ctx, address, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not validate address: %w", err)
	}

	if !co.SkipDNS {
		if err := d.storage.UpsertValidation(ctx, *res); err != nil {
			logger.Warn(ctx, "could not persist validation verdict",
				zap.String("address", address), zap.Error(err))
		}
	}

	return res, nil
}

// Discover executes the pipeline for a target and records the outcome on all
// pending runs for the target key. When no pending runs remain (all deleted),
// a conflict error is returned so the worker can cancel the job.
func (d discoverer) Discover(ctx context.Context, targetKey string, target domain.TargetDescriptor) error {
	pending, err := d.storage.PendingCountByTargetKey(ctx, targetKey)
	if err != nil {
		return fmt.Errorf("could not count pending discoveries: %w", err)
	}
	if pending == 0 {
		return serrors.With(serrors.ErrConflict, "no pending discoveries left for target")
	}

	start := time.Now()
	result, runErr := d.runner.Run(ctx, target)
	metrics.DiscoveryDuration.Observe(time.Since(start).Seconds())

	if runErr != nil {
		metrics.DiscoveryRuns.WithLabelValues("failed").Inc()

		errMsg := runErr.Error()
		if err := d.storage.UpdatePendingByTargetKey(ctx, targetKey, storage.DiscoveryUpdates{
			Status:      domain.DiscoveryStatusFailed,
			LastError:   &errMsg,
			MaxAttempts: d.options.MaxAttempts,
		}); err != nil {
			return fmt.Errorf("could not record failed run: %w", err)
		}

		return fmt.Errorf("could not run discovery: %w", runErr)
	}

	metrics.DiscoveryRuns.WithLabelValues("completed").Inc()

	// share fresh verdicts with the standalone validation endpoint
	for i := range result.Emails {
		if result.Emails[i].Validation == nil {
			continue
		}
		if err := d.storage.UpsertValidation(ctx, *result.Emails[i].Validation); err != nil {
			logger.Warn(ctx, "could not persist validation verdict",
				zap.String("address", result.Emails[i].Address), zap.Error(err))
		}
	}

	noErr := ""
	if err := d.storage.UpdatePendingByTargetKey(ctx, targetKey, storage.DiscoveryUpdates{
		Status:    domain.DiscoveryStatusCompleted,
		Result:    result,
		LastError: &noErr,
	}); err != nil {
		return fmt.Errorf("could not record completed run: %w", err)
	}

	return nil
}

// New creates a new Discoverer instance backed by the provided storage,
// pipeline runner and validator, configured with the given options.
func New(strg storage.Storage, runner Runner, validator validate.Validator, options Options) Discoverer {
	return &discoverer{
		options:   options,
		storage:   strg,
		runner:    runner,
		validator: validator,
	}
}
