package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunID identifies a batch run.
type RunID uuid.UUID

func (id RunID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether id is the zero RunID.
func (id RunID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// ParseRunID parses the textual form of a RunID.
func ParseRunID(s string) (RunID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RunID{}, fmt.Errorf("could not parse run id %q: %w", s, err)
	}

	return RunID(id), nil
}

func (id RunID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *RunID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// NewRunID returns a random RunID.
func NewRunID() RunID { return RunID(uuid.New()) }

// RunTrigger tells what started a run.
type RunTrigger string

const (
	RunTriggerSchedule RunTrigger = "SCHEDULE"
	RunTriggerOnDemand RunTrigger = "ON_DEMAND"
)

// RunStatus is the lifecycle state of a run.
type RunStatus string

const (
	// RunStatusPending means the run is queued.
	RunStatusPending RunStatus = "PENDING"
	// RunStatusRunning means products are being checked.
	RunStatusRunning RunStatus = "RUNNING"
	// RunStatusCompleted means every considered product has a result.
	RunStatusCompleted RunStatus = "COMPLETED"
	// RunStatusFailed means the run could not start checking, e.g. the
	// product list was unavailable. See LastError.
	RunStatusFailed RunStatus = "FAILED"
)

// BatchRun is one execution of the runner over a snapshot of the product set.
type BatchRun struct {
	ID      RunID      `json:"id"`
	Trigger RunTrigger `json:"trigger"`
	Status  RunStatus  `json:"status"`
	// ProductFilter restricts the run to these products; empty means all.
	ProductFilter []ProductID `json:"productFilter,omitempty"`

	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	// Results holds exactly one entry per considered product.
	Results        []CheckResult `json:"results,omitempty"`
	SucceededCount int           `json:"succeededCount"`
	FailedCount    int           `json:"failedCount"`

	// LastError describes a run-level failure.
	LastError string `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Tally recomputes SucceededCount and FailedCount from Results.
func (r *BatchRun) Tally() {
	r.SucceededCount, r.FailedCount = 0, 0
	for i := range r.Results {
		if r.Results[i].Failed() {
			r.FailedCount++
		} else {
			r.SucceededCount++
		}
	}
}
