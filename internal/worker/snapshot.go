package worker

import (
	"context"
	"countries/internal/countries"
	"countries/pkg/logger"
	"countries/pkg/serrors"
	"errors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitBackoff delays the next attempt of a refresh rejected by the
// country source's rate limiter.
const rateLimitBackoff = time.Minute

// SnapshotWorker refreshes the stored default country list.
//
// A refresh is one aggregation batch. When it fails the job is cancelled
// rather than retried; the next periodic run issues a new batch. The only
// exception is rate limiting, where the whole batch is snoozed.
type SnapshotWorker struct {
	river.WorkerDefaults[countries.SnapshotArgs]

	countries countries.Service
}

// NewSnapshotWorker creates a worker refreshing snapshots through svc.
func NewSnapshotWorker(svc countries.Service) *SnapshotWorker {
	return &SnapshotWorker{countries: svc}
}

func (w *SnapshotWorker) Work(ctx context.Context, job *river.Job[countries.SnapshotArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	start := time.Now()
	if err := w.countries.RefreshSnapshot(ctx); err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			logger.Warn(ctx, "snapshot refresh rate limited", zap.Duration("snooze", rateLimitBackoff))

			return river.JobSnooze(rateLimitBackoff) //nolint: wrapcheck
		}
		logger.Error(ctx, "snapshot refresh failed", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Info(ctx, "snapshot refresh completed", zap.Duration("took", time.Since(start)))

	return nil
}
