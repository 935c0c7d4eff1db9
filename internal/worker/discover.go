package worker

import (
	"context"
	"errors"
	"fmt"
	"mailscout/internal/discovery"
	"mailscout/pkg/logger"
	"mailscout/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitSnooze is how long a job sleeps when every remaining source
// reported upstream rate limiting. Crawled sites rarely publish reset
// windows, so a fixed backoff is used.
const rateLimitSnooze = 5 * time.Minute

// DiscoverWorker is a River worker that processes discovery jobs using a
// discovery.Discoverer. One job covers all pending runs sharing a target key;
// the service updates them together when the run finishes.
type DiscoverWorker struct {
	river.WorkerDefaults[discovery.JobArgs]

	discoverer discovery.Discoverer
}

// NewDiscoverWorker constructs a DiscoverWorker using the provided service.
func NewDiscoverWorker(discoverer discovery.Discoverer) *DiscoverWorker {
	return &DiscoverWorker{discoverer: discoverer}
}

// Work executes a single discovery job and maps service errors to the
// appropriate River actions: a conflict (no pending runs remain, usually
// because they were all deleted) cancels the job, upstream rate limiting
// snoozes it, and anything else is retried by River.
func (w *DiscoverWorker) Work(ctx context.Context, job *river.Job[discovery.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("targetKey", job.Args.TargetKey))

	if err := w.discoverer.Discover(ctx, job.Args.TargetKey, job.Args.Target); err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in discovery run", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(rateLimitSnooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not process discovery job: %w", err)
	}

	logger.Info(ctx, "discovery run completed")

	return nil
}
