package storage

import (
	"context"
	"pricewatch/pkg/domain"
	"time"
)

// RunUpdates describes the fields changed on a batch run. Nil fields are left
// untouched.
type RunUpdates struct {
	Status         domain.RunStatus
	StartedAt      *time.Time
	FinishedAt     *time.Time
	SucceededCount *int
	FailedCount    *int
	// LastError, when provided, sets the run-level error. An empty string
	// clears it.
	LastError *string
}

// RunStorage persists batch run summaries.
type RunStorage interface {
	// StoreRun inserts a run and returns it as stored. A zero ID is replaced by
	// a generated one. When a run with the same ID exists it is returned
	// unchanged.
	StoreRun(ctx context.Context, run domain.BatchRun) (*domain.BatchRun, error)
	// UpdateRun applies updates to the run and returns the updated row, or nil
	// when the run does not exist.
	UpdateRun(ctx context.Context, ID domain.RunID, updates RunUpdates) (*domain.BatchRun, error)
	// RunByID returns the run without its results, or nil when not found.
	RunByID(ctx context.Context, ID domain.RunID) (*domain.BatchRun, error)
}

// ResultStorage persists per-product check results.
type ResultStorage interface {
	// StoreCheckResult records result. Storing a second result for the same run
	// and product replaces the first.
	StoreCheckResult(ctx context.Context, result domain.CheckResult) error
	// DeleteRunResults removes every result of a run and returns how many were
	// removed.
	DeleteRunResults(ctx context.Context, runID domain.RunID) (int64, error)
	// RunResults returns the results of a run ordered by check time.
	RunResults(ctx context.Context, runID domain.RunID) ([]domain.CheckResult, error)
	// ProductResults returns the most recent results of a product, newest
	// first, up to limit.
	ProductResults(ctx context.Context, productID domain.ProductID, limit uint) ([]domain.CheckResult, error)
}
