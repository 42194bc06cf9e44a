package worker

import (
	"context"
	"countries/internal/countries"
	"countries/pkg/logger"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background worker.
type Options struct {
	// MaxWorkers bounds concurrently running jobs of the default queue.
	MaxWorkers int
	// SnapshotInterval schedules a periodic refresh, run once on start.
	// Zero disables the periodic job.
	SnapshotInterval time.Duration
}

// Start registers the workers and starts a River client on dbPool.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	svc countries.Service,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewSnapshotWorker(svc))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	var periodicJobs []*river.PeriodicJob
	if options.SnapshotInterval > 0 {
		interval := options.SnapshotInterval
		periodicJobs = append(periodicJobs, river.NewPeriodicJob(
			river.PeriodicInterval(interval),
			func() (river.JobArgs, *river.InsertOpts) {
				return countries.NewSnapshotArgs(interval), nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
		logger.Info(ctx, "periodic snapshot refresh scheduled", zap.Duration("interval", interval))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
