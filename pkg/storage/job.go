package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the queue backend.
type JobStorage interface {
	// AddJob enqueues a job with the given arguments. It participates in the
	// surrounding transaction when the backend supports it. The returned bool
	// is false when the insert was skipped as a unique duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
