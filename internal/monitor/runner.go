package monitor

import (
	"context"
	"errors"
	"fmt"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/notifier"
	"pricewatch/pkg/pagefetcher"
	"pricewatch/pkg/pricing"
	"pricewatch/pkg/serrors"
	"pricewatch/pkg/storage"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// recordTimeout bounds storing one result. Results are stored even after the
// batch budget ran out.
const recordTimeout = 10 * time.Second

// Runner checks a snapshot of products with bounded parallelism. Every product
// yields exactly one CheckResult; no per-product failure aborts the batch.
type Runner struct {
	options  Options
	fetcher  pagefetcher.Fetcher
	notifier notifier.Notifier
	recorder storage.ResultStorage
	parser   pricing.Parser
	limiter  *hostLimiter
	tel      telemetry
	now      func() time.Time
}

// NewRunner creates a Runner. Results are handed to recorder as soon as each
// product is done.
func NewRunner(
	fetcher pagefetcher.Fetcher,
	notifier notifier.Notifier,
	recorder storage.ResultStorage,
	options Options) *Runner {
	return &Runner{
		options:  options,
		fetcher:  fetcher,
		notifier: notifier,
		recorder: recorder,
		parser:   pricing.Parser{DecimalSeparator: options.DecimalSeparator},
		limiter:  newHostLimiter(options.PerHostInterval, options.PerHostBurst),
		tel:      newTelemetry(),
		now:      time.Now,
	}
}

// RunBatch checks products and returns the finished run. The returned run
// has one result per product, in the order of products, regardless of the
// order in which checks completed. Products not started before the batch
// budget expires are recorded as timed out without loading their page.
func (r *Runner) RunBatch(ctx context.Context, runID domain.RunID, products []domain.TrackedProduct) domain.BatchRun {
	run := domain.BatchRun{
		ID:        runID,
		Status:    domain.RunStatusRunning,
		StartedAt: r.now(),
		Results:   make([]domain.CheckResult, len(products)),
	}

	ctx = logger.WithFields(ctx, zap.Stringer("runID", runID))
	logger.Info(ctx, "batch started", zap.Int("products", len(products)), zap.Int("workers", r.options.workers()))

	batchCtx := ctx
	if r.options.BatchTimeout > 0 {
		var cancel context.CancelFunc
		batchCtx, cancel = context.WithTimeout(ctx, r.options.BatchTimeout)
		defer cancel()
	}

	var g errgroup.Group
	g.SetLimit(r.options.workers())
	for i := range products {
		g.Go(func() error {
			// each goroutine owns exactly one slot
			run.Results[i] = r.checkAndRecord(ctx, batchCtx, runID, products[i])

			return nil
		})
	}
	_ = g.Wait()

	run.FinishedAt = r.now()
	run.Status = domain.RunStatusCompleted
	run.Tally()

	logger.Info(ctx, "batch finished",
		zap.Int("succeeded", run.SucceededCount),
		zap.Int("failed", run.FailedCount),
		zap.Duration("took", run.FinishedAt.Sub(run.StartedAt)))

	return run
}

func (r *Runner) checkAndRecord(
	ctx, batchCtx context.Context,
	runID domain.RunID,
	product domain.TrackedProduct) (result domain.CheckResult) {
	ctx = logger.WithFields(ctx, zap.Stringer("productID", product.ID))
	batchCtx = logger.WithFields(batchCtx, zap.Stringer("productID", product.ID))

	batchCtx, span := r.tel.tracer.Start(batchCtx, "monitor.check", trace.WithAttributes(
		attribute.String("product.id", product.ID.String()),
		attribute.String("product.url", product.URL),
	))
	defer span.End()

	defer func() {
		if p := recover(); p != nil {
			result = r.failed(runID, product.ID, domain.ErrorKindInternal, fmt.Sprintf("check panicked: %v", p))
			logger.Error(ctx, "product check panicked", zap.Any("panic", p), zap.Stack("stack"))
		}

		span.SetAttributes(attribute.String("check.decision", string(result.Decision)))
		if result.Failed() {
			span.SetStatus(codes.Error, string(result.ErrorKind))
		}
		r.tel.recordCheck(ctx, &result)
		r.record(ctx, &result)
	}()

	return r.check(batchCtx, runID, product)
}

// check runs the per-product pipeline: validate, wait for the host, fetch,
// parse, compare and notify. It never returns without a result.
func (r *Runner) check(ctx context.Context, runID domain.RunID, product domain.TrackedProduct) domain.CheckResult {
	if err := product.Validate(); err != nil {
		return r.failedWith(runID, product.ID, err)
	}
	if ctx.Err() != nil {
		return r.failed(runID, product.ID, domain.ErrorKindTimeout, "batch time budget ran out before the product was checked")
	}

	if err := r.limiter.Wait(ctx, product.URL); err != nil {
		return r.failed(runID, product.ID, domain.ErrorKindTimeout,
			fmt.Sprintf("batch time budget ran out while waiting for %s: %s", product.URL, err))
	}

	started := time.Now()
	texts, err := r.fetcher.Fetch(ctx, product.URL, product.CSSSelector)
	r.tel.recordFetch(ctx, started, err)
	if err == nil && len(texts) == 0 {
		err = serrors.With(pagefetcher.ErrNoMatch, "selector %q matched no element", product.CSSSelector)
	}
	if err != nil {
		logger.Warn(ctx, "could not fetch product page", zap.Error(err))

		return r.failedWith(runID, product.ID, err)
	}

	result := domain.CheckResult{
		RunID:            runID,
		ProductID:        product.ID,
		ObservedPriceRaw: texts[0],
		ExtraMatches:     texts[1:],
	}

	price, err := r.parser.Parse(result.ObservedPriceRaw)
	if err != nil {
		logger.Warn(ctx, "could not parse price", zap.String("raw", result.ObservedPriceRaw), zap.Error(err))
		result.ErrorKind = errorKind(err)
		result.ErrorMessage = err.Error()
		result.CheckedAt = r.now()

		return result
	}
	result.ObservedPrice = &price

	currency, ok := pricing.MatchCurrency(result.ObservedPriceRaw, product.ExpectedPriceCurrency)
	result.CurrencyAssumed = currency
	result.Decision = pricing.Evaluate(price, product.ExpectedPrice, ok)
	result.Matched = result.Decision == domain.DecisionNotify

	if result.Matched {
		err := r.notifier.Notify(ctx, product.EmailNotification, product, price)
		r.tel.recordNotification(ctx, err)
		if err != nil {
			logger.Error(ctx, "could not notify recipients", zap.Error(err))
			result.ErrorKind = domain.ErrorKindNotifyFailed
			result.ErrorMessage = err.Error()
		} else {
			result.Notified = true
		}
	}

	logger.Debug(ctx, "product checked",
		zap.String("price", price.String()),
		zap.String("decision", string(result.Decision)))
	result.CheckedAt = r.now()

	return result
}

// record persists result. Losing a record is logged and tolerated.
func (r *Runner) record(ctx context.Context, result *domain.CheckResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := r.recorder.StoreCheckResult(ctx, *result); err != nil {
		logger.Error(ctx, "could not record check result", zap.Error(err))
	}
}

func (r *Runner) failedWith(runID domain.RunID, productID domain.ProductID, err error) domain.CheckResult {
	return r.failed(runID, productID, errorKind(err), err.Error())
}

func (r *Runner) failed(runID domain.RunID, productID domain.ProductID, kind domain.ErrorKind, msg string) domain.CheckResult {
	return domain.CheckResult{
		RunID:        runID,
		ProductID:    productID,
		ErrorKind:    kind,
		ErrorMessage: msg,
		CheckedAt:    r.now(),
	}
}

// errorKind maps fetch, parse and validation errors onto the recorded kinds.
func errorKind(err error) domain.ErrorKind {
	switch {
	case errors.Is(err, domain.ErrInvalidProduct):
		return domain.ErrorKindInvalidProduct
	case errors.Is(err, pagefetcher.ErrNoMatch):
		return domain.ErrorKindNoMatch
	case errors.Is(err, pagefetcher.ErrNavigation):
		return domain.ErrorKindNavigation
	case errors.Is(err, serrors.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return domain.ErrorKindTimeout
	case errors.Is(err, pricing.ErrEmpty):
		return domain.ErrorKindParseEmpty
	case errors.Is(err, pricing.ErrMalformed):
		return domain.ErrorKindParseMalformed
	default:
		return domain.ErrorKindInternal
	}
}
