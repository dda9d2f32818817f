package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the queue backend.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It is atomic with
	// respect to any surrounding transaction. The returned bool is false when
	// the job was skipped as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
