// Package monitor runs the price monitoring pipeline: it loads the tracked
// products, checks each of them with bounded parallelism, notifies recipients
// of qualifying price drops and records one result per product and run.
package monitor

import (
	"context"
	"fmt"
	"pricewatch/internal/config"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/notifier"
	"pricewatch/pkg/pagefetcher"
	"pricewatch/pkg/serrors"
	"pricewatch/pkg/storage"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// DefaultResultsLimit is used when ProductResults is called without a limit.
	DefaultResultsLimit = 20
	// MaxResultsLimit caps ProductResults.
	MaxResultsLimit = 100
)

// Options configure batch execution.
type Options struct {
	// Workers is the number of products checked concurrently.
	Workers int
	// BatchTimeout bounds a whole run. Zero means no budget.
	BatchTimeout time.Duration
	// PerHostInterval spaces page loads on the same host. Zero disables it.
	PerHostInterval time.Duration
	// PerHostBurst is the number of page loads allowed on a host before
	// PerHostInterval applies.
	PerHostBurst int
	// DecimalSeparator pins the price decimal separator. Zero infers it.
	DecimalSeparator rune
	// MaxAttempts is the number of times River tries a run job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	var sep rune
	if cfg.Monitor.DecimalSeparator != "" {
		sep = []rune(cfg.Monitor.DecimalSeparator)[0]
	}

	return Options{
		Workers:          cfg.Monitor.Workers,
		BatchTimeout:     cfg.Monitor.BatchTimeout,
		PerHostInterval:  cfg.Monitor.PerHostInterval,
		PerHostBurst:     cfg.Monitor.PerHostBurst,
		DecimalSeparator: sep,
		MaxAttempts:      3,
	}
}

func (o Options) workers() int { return max(o.Workers, 1) }

type monitor struct {
	options Options
	storage storage.Storage
	fetcher pagefetcher.Fetcher
	runner  *Runner
	now     func() time.Time
}

// Enqueue stores a pending on-demand run and its job in one transaction, so
// the job never runs without its run and a stored run is never left without
// a job.
func (m *monitor) Enqueue(ctx context.Context, filter []domain.ProductID) (*domain.BatchRun, error) {
	var run *domain.BatchRun
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		run, err = tx.StoreRun(ctx, domain.BatchRun{
			Trigger:       domain.RunTriggerOnDemand,
			Status:        domain.RunStatusPending,
			ProductFilter: dedupIDs(filter),
		})
		if err != nil {
			return fmt.Errorf("could not store run: %w", err)
		}

		if _, err := tx.AddJob(ctx, NewRunBatchArgs(run.ID, run.Trigger, m.options.MaxAttempts), nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue run: %w", err)
	}

	return run, nil
}

func (m *monitor) Prepare(ctx context.Context,
	runID domain.RunID,
	trigger domain.RunTrigger,
	filter []domain.ProductID) (*domain.BatchRun, error) {
	run, err := m.storage.StoreRun(ctx, domain.BatchRun{
		ID:            runID,
		Trigger:       trigger,
		Status:        domain.RunStatusPending,
		ProductFilter: dedupIDs(filter),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store run: %w", err)
	}

	return run, nil
}

// Execute runs the batch of a stored run. Only a failure to load the product
// snapshot fails the run as a whole; the run is then marked failed and the
// error returned so the job can be retried. Executing a running or failed run
// again discards its earlier results first.
func (m *monitor) Execute(ctx context.Context, runID domain.RunID) (*domain.BatchRun, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("runID", runID))

	run, err := m.storage.RunByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("could not get run: %w", err)
	}
	if run == nil {
		return nil, serrors.With(serrors.ErrNotFound, "run not found")
	}
	if run.Status == domain.RunStatusCompleted {
		return nil, serrors.With(serrors.ErrConflict, "run %s is already completed", runID)
	}

	started := m.now()
	if _, err := m.storage.UpdateRun(ctx, runID, storage.RunUpdates{
		Status:    domain.RunStatusRunning,
		StartedAt: &started,
	}); err != nil {
		return nil, fmt.Errorf("could not mark run as running: %w", err)
	}

	if run.Status != domain.RunStatusPending {
		removed, err := m.storage.DeleteRunResults(ctx, runID)
		if err != nil {
			return nil, fmt.Errorf("could not discard earlier results: %w", err)
		}
		logger.Info(ctx, "re-executing run",
			zap.String("previousStatus", string(run.Status)),
			zap.Int64("discardedResults", removed))
	}

	products, err := m.storage.Products(ctx, run.ProductFilter...)
	if err != nil {
		err = serrors.Wrap(serrors.ErrUnavailable, err, "could not load products")
		m.fail(ctx, runID, err)

		return nil, err
	}

	finished := m.runner.RunBatch(ctx, runID, products)

	counts := storage.RunUpdates{
		Status:         domain.RunStatusCompleted,
		StartedAt:      &finished.StartedAt,
		FinishedAt:     &finished.FinishedAt,
		SucceededCount: &finished.SucceededCount,
		FailedCount:    &finished.FailedCount,
		LastError:      new(string),
	}
	// the batch context may be gone by now, the summary must still land
	updated, err := m.storage.UpdateRun(context.WithoutCancel(ctx), runID, counts)
	if err != nil {
		return nil, fmt.Errorf("could not store run summary: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "run disappeared while executing")
	}
	updated.Results = finished.Results

	return updated, nil
}

func (m *monitor) fail(ctx context.Context, runID domain.RunID, cause error) {
	logger.Error(ctx, "batch run failed", zap.Error(cause))

	now := m.now()
	msg := cause.Error()
	if _, err := m.storage.UpdateRun(context.WithoutCancel(ctx), runID, storage.RunUpdates{
		Status:     domain.RunStatusFailed,
		FinishedAt: &now,
		LastError:  &msg,
	}); err != nil {
		logger.Error(ctx, "could not mark run as failed", zap.Error(err))
	}
}

// Run returns a run summary. Results are attached only to completed runs, so
// callers never see a partial batch.
func (m *monitor) Run(ctx context.Context, runID domain.RunID) (*domain.BatchRun, error) {
	run, err := m.storage.RunByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("could not get run: %w", err)
	}
	if run == nil {
		return nil, serrors.With(serrors.ErrNotFound, "run not found")
	}

	if run.Status == domain.RunStatusCompleted {
		results, err := m.storage.RunResults(ctx, runID)
		if err != nil {
			return nil, fmt.Errorf("could not get run results: %w", err)
		}
		run.Results = results
	}

	return run, nil
}

func (m *monitor) ProductResults(ctx context.Context, productID domain.ProductID, limit uint) ([]domain.CheckResult, error) {
	switch {
	case limit == 0:
		limit = DefaultResultsLimit
	case limit > MaxResultsLimit:
		limit = MaxResultsLimit
	}

	results, err := m.storage.ProductResults(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get product results: %w", err)
	}

	return results, nil
}

// CheckURL loads URL and parses the first text matching selector. Invalid
// input is rejected with serrors.ErrBadRequest before any page is loaded.
func (m *monitor) CheckURL(ctx context.Context, URL, selector string) (decimal.Decimal, error) {
	if err := domain.ValidateURL(URL); err != nil {
		return decimal.Zero, err
	}
	if strings.TrimSpace(selector) == "" {
		return decimal.Zero, serrors.With(serrors.ErrBadRequest, "css selector is required")
	}

	texts, err := m.fetcher.Fetch(ctx, URL, selector)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not fetch %s: %w", URL, err)
	}
	if len(texts) == 0 {
		return decimal.Zero, serrors.With(pagefetcher.ErrNoMatch, "selector %q matched no element", selector)
	}

	price, err := m.runner.parser.Parse(texts[0])
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not parse price %q: %w", texts[0], err)
	}

	return price, nil
}

func dedupIDs(ids []domain.ProductID) []domain.ProductID {
	if len(ids) == 0 {
		return nil
	}

	out := make([]domain.ProductID, 0, len(ids))
	seen := make(map[domain.ProductID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// New creates a Monitor backed by storage, loading pages with fetcher and
// delivering price drops through notifier.
func New(storage storage.Storage, fetcher pagefetcher.Fetcher, notifier notifier.Notifier, options Options) Monitor {
	return &monitor{
		options: options,
		storage: storage,
		fetcher: fetcher,
		runner:  NewRunner(fetcher, notifier, storage, options),
		now:     time.Now,
	}
}
