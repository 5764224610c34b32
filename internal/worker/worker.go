// Package worker runs the River client that executes batch runs: on-demand
// runs enqueued through the API and scheduled runs inserted by a periodic job.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"pricewatch/internal/config"
	"pricewatch/internal/monitor"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job processor.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
	// JobTimeout bounds a single run job.
	JobTimeout time.Duration
	// Interval is the cadence of scheduled runs. Zero disables scheduling.
	Interval time.Duration
	// RunOnStart inserts a scheduled run as soon as the client starts.
	RunOnStart bool
	// MaxAttempts is the number of times River tries a scheduled run job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
// The job timeout leaves the batch its whole budget plus a grace period to
// store the run summary.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:  cfg.Worker.MaxWorkers,
		JobTimeout:  cfg.Monitor.BatchTimeout + cfg.Worker.JobTimeoutGrace,
		Interval:    cfg.Monitor.Interval,
		RunOnStart:  cfg.Monitor.RunOnStart,
		MaxAttempts: monitor.NewOptions(cfg).MaxAttempts,
	}
}

// NewClient creates a River client executing run jobs with mon. The client is
// not started.
func NewClient(ctx context.Context, dbPool *pgxpool.Pool, mon monitor.Monitor, opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewBatchWorker(mon, opts.JobTimeout))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(opts.MaxWorkers, 1)},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs(opts),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}

// Start creates and starts the River client.
func Start(ctx context.Context, dbPool *pgxpool.Pool, mon monitor.Monitor, opts Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := NewClient(ctx, dbPool, mon, opts)
	if err != nil {
		return nil, err
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	logger.Info(ctx, "worker started",
		zap.Int("maxWorkers", opts.MaxWorkers),
		zap.Duration("interval", opts.Interval),
		zap.Duration("jobTimeout", opts.JobTimeout))

	return riverClient, nil
}

func periodicJobs(opts Options) []*river.PeriodicJob {
	if opts.Interval <= 0 {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(opts.Interval),
			func() (river.JobArgs, *river.InsertOpts) {
				return monitor.NewRunBatchArgs(domain.RunID{}, domain.RunTriggerSchedule, opts.MaxAttempts), nil
			},
			&river.PeriodicJobOpts{RunOnStart: opts.RunOnStart},
		),
	}
}
