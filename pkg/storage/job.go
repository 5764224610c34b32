package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same database as the rest of the
// data, so that a job inserted inside a transaction only becomes visible once
// the transaction commits.
type JobStorage interface {
	// AddJob enqueues a job with the given arguments. It reports false when the
	// job was skipped as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
