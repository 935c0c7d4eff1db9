package discovery

import (
	"time"

	"mailscout/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a discovery job submitted to River.
// TargetKey is the unique key for jobs so that concurrent requests for the
// same company share a single run.
type JobArgs struct {
	// TargetKey is the normalized target identity. It is marked as unique so
	// River can enforce one job per company according to InsertOpts.UniqueOpts.
	TargetKey string `json:"targetKey" river:"unique"`
	// Target is the normalized descriptor the pipeline should process.
	Target domain.TargetDescriptor `json:"target"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same target key is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the discovery worker.
func (args JobArgs) Kind() string { return "DiscoverEmailsJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate jobs for the same target across multiple job states.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per target in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
