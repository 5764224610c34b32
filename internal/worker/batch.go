package worker

import (
	"context"
	"errors"
	"fmt"
	"pricewatch/internal/monitor"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/serrors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// scheduledRunNamespace seeds the run IDs derived from scheduled jobs.
var scheduledRunNamespace = uuid.MustParse("6f1c3a52-9d0e-4b8a-a1f4-2c7e5d9b8e31")

// ScheduledRunID returns the run a scheduled job executes. Every attempt of
// the job maps to the same run.
func ScheduledRunID(jobID int64) domain.RunID {
	return domain.RunID(uuid.NewSHA1(scheduledRunNamespace, []byte(strconv.FormatInt(jobID, 10))))
}

// BatchWorker executes batch run jobs. Scheduled jobs carry no run; the
// worker prepares one before executing it.
type BatchWorker struct {
	river.WorkerDefaults[monitor.RunBatchArgs]

	monitor monitor.Monitor
	timeout time.Duration
}

// NewBatchWorker creates a worker whose jobs are cut off after timeout. A
// zero timeout keeps River's default.
func NewBatchWorker(mon monitor.Monitor, timeout time.Duration) *BatchWorker {
	return &BatchWorker{monitor: mon, timeout: timeout}
}

func (w *BatchWorker) Timeout(*river.Job[monitor.RunBatchArgs]) time.Duration {
	return w.timeout
}

// Work executes the run. A run that does not exist or has already completed
// cancels the job; any other error is returned so River retries it.
func (w *BatchWorker) Work(ctx context.Context, job *river.Job[monitor.RunBatchArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("trigger", string(job.Args.Trigger)))

	runID := job.Args.RunID
	if runID.IsZero() {
		run, err := w.monitor.Prepare(ctx, ScheduledRunID(job.ID), job.Args.Trigger, nil)
		if err != nil {
			logger.Error(ctx, "could not prepare scheduled run", zap.Error(err))

			return fmt.Errorf("could not prepare run: %w", err)
		}
		runID = run.ID
	}
	ctx = logger.WithFields(ctx, zap.Stringer("runID", runID))

	run, err := w.monitor.Execute(ctx, runID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrConflict) {
			logger.Warn(ctx, "cancelling run job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in executing run", zap.Error(err))

		return fmt.Errorf("could not execute run: %w", err)
	}

	logger.Info(ctx, "run executed successfully",
		zap.Int("succeeded", run.SucceededCount),
		zap.Int("failed", run.FailedCount))

	return nil
}
