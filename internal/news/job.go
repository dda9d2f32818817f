package news

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RefreshJobKind is the River kind of news refresh jobs.
const RefreshJobKind = "RefreshNewsJob"

// RefreshArgs are the arguments of a news refresh job. Jobs for the same
// query are unique within one refresh interval.
type RefreshArgs struct {
	Query string `json:"query" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod is the window in which a second refresh of the same query
	// is skipped as a duplicate.
	uniqueJobPeriod time.Duration
}

// NewRefreshArgs returns the job arguments for refreshing the configured query.
func NewRefreshArgs(options Options) RefreshArgs {
	return RefreshArgs{
		Query:           options.Query,
		maxAttempts:     options.MaxAttempts,
		uniqueJobPeriod: options.RefreshInterval,
	}
}

// Kind returns the River job kind used to dispatch the refresh worker.
func (args RefreshArgs) Kind() string { return RefreshJobKind }

// InsertOpts limits retries and keeps at most one pending refresh per query
// and period.
func (args RefreshArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
