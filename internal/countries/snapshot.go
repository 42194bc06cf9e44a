package countries

import (
	"context"
	"countries/pkg/logger"
	"countries/pkg/serrors"
	"countries/pkg/storage"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// SnapshotArgs is the River job that refreshes the stored default list.
type SnapshotArgs struct {
	// uniquePeriod is the window in which an in-flight refresh makes new
	// requests duplicates.
	uniquePeriod time.Duration
}

// NewSnapshotArgs returns refresh job arguments unique within period.
func NewSnapshotArgs(period time.Duration) SnapshotArgs {
	return SnapshotArgs{uniquePeriod: period}
}

// Kind returns the River job kind used to register and dispatch the snapshot worker.
func (SnapshotArgs) Kind() string { return "CountrySnapshotJob" }

// InsertOpts runs a refresh at most once per request: a failed batch is not
// retried piecemeal, the next period issues a new one. Only one refresh may
// be queued or running at a time.
func (args SnapshotArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{MaxAttempts: 1}
	if args.uniquePeriod > 0 {
		opts.UniqueOpts = river.UniqueOpts{
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		}
	}

	return opts
}

// RefreshSnapshot aggregates the default list and replaces the stored
// snapshot with it in one transaction. A failed aggregation leaves the
// previous snapshot untouched.
func (s *service) RefreshSnapshot(ctx context.Context) error {
	if s.storage == nil {
		return serrors.With(serrors.ErrUnavailable, "snapshot storage is not configured")
	}

	list, err := s.Aggregate(ctx, s.options.DefaultCountries)
	if err != nil {
		return err
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.DeleteSnapshots(ctx); err != nil {
			return fmt.Errorf("could not delete previous snapshot: %w", err)
		}
		if err := tx.StoreSnapshot(ctx, list); err != nil {
			return fmt.Errorf("could not store snapshot: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not refresh snapshot: %w", err)
	}

	logger.Info(ctx, "country snapshot refreshed", zap.Int("count", len(list)))

	return nil
}

// RequestRefresh enqueues a refresh job. It reports false when one is
// already queued or running.
func (s *service) RequestRefresh(ctx context.Context) (bool, error) {
	if s.storage == nil {
		return false, serrors.With(serrors.ErrUnavailable, "snapshot storage is not configured")
	}
	if !s.options.SnapshotEnabled {
		return false, serrors.With(serrors.ErrUnavailable, "snapshots are disabled")
	}

	added, err := s.storage.AddJob(ctx, NewSnapshotArgs(s.options.SnapshotInterval), nil)
	if err != nil {
		return false, fmt.Errorf("could not enqueue snapshot refresh: %w", err)
	}

	return added, nil
}
