package monitor

import (
	"pricewatch/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RunBatchArgs are the arguments of the River job executing a batch run.
// Scheduled jobs carry a zero RunID; the worker prepares the run itself.
type RunBatchArgs struct {
	RunID   domain.RunID      `json:"runId" river:"unique"`
	Trigger domain.RunTrigger `json:"trigger" river:"unique"`

	maxAttempts int
}

// NewRunBatchArgs builds job arguments for the run.
func NewRunBatchArgs(runID domain.RunID, trigger domain.RunTrigger, maxAttempts int) RunBatchArgs {
	return RunBatchArgs{RunID: runID, Trigger: trigger, maxAttempts: maxAttempts}
}

func (args RunBatchArgs) Kind() string { return "RunBatchJob" }

// InsertOpts keeps at most one unfinished job per run. For scheduled jobs,
// which share the zero RunID, this means a tick is skipped while the previous
// scheduled run is still queued or running.
func (args RunBatchArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
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
