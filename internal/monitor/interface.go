package monitor

import (
	"context"
	"pricewatch/pkg/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -package mockmonitor -source=interface.go -destination=mock/mockmonitor.go *
type Monitor interface {
	// Prepare stores a pending run without scheduling it. A zero runID gets a
	// generated one; preparing an ID that is already stored returns that run.
	Prepare(ctx context.Context,
		runID domain.RunID,
		trigger domain.RunTrigger,
		filter []domain.ProductID) (*domain.BatchRun, error)
	// Enqueue stores a pending on-demand run and schedules the job executing it.
	Enqueue(ctx context.Context, filter []domain.ProductID) (*domain.BatchRun, error)
	// Execute checks every product of a stored run and returns the finished run.
	Execute(ctx context.Context, runID domain.RunID) (*domain.BatchRun, error)
	// Run returns a run. Results are only attached once the run is completed.
	Run(ctx context.Context, runID domain.RunID) (*domain.BatchRun, error)
	// ProductResults returns the latest results of a product, newest first.
	ProductResults(ctx context.Context, productID domain.ProductID, limit uint) ([]domain.CheckResult, error)
	// CheckURL loads a page and parses the price shown at selector, bypassing
	// the stored products.
	CheckURL(ctx context.Context, URL, selector string) (decimal.Decimal, error)
}
