package monitor_test

import (
	"context"
	"fmt"
	"pricewatch/internal/monitor"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/pagefetcher"
	"pricewatch/pkg/serrors"
	"sync"
	"testing"
	"time"

	mocknotifier "pricewatch/pkg/notifier/mock"
	mockpagefetcher "pricewatch/pkg/pagefetcher/mock"
	mockstorage "pricewatch/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type runnerMocks struct {
	fetcher  *mockpagefetcher.MockFetcher
	notifier *mocknotifier.MockNotifier
	recorder *mockstorage.MockAllStorage
}

func newTestRunner(t *testing.T, opts monitor.Options) (*runnerMocks, *monitor.Runner) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &runnerMocks{
		fetcher:  mockpagefetcher.NewMockFetcher(ctrl),
		notifier: mocknotifier.NewMockNotifier(ctrl),
		recorder: mockstorage.NewMockAllStorage(ctrl),
	}

	return m, monitor.NewRunner(m.fetcher, m.notifier, m.recorder, opts)
}

func product(n int) domain.TrackedProduct {
	return domain.TrackedProduct{
		ID:                    domain.ProductID(uuid.New()),
		ProductName:           fmt.Sprintf("Product %d", n),
		URL:                   fmt.Sprintf("https://shop%d.example.com/item", n),
		CSSSelector:           ".price",
		ExpectedPrice:         decimal.RequireFromString("29.99"),
		ExpectedPriceCurrency: "USD",
		EmailNotification:     []string{"buyer@example.com"},
	}
}

func products(n int) []domain.TrackedProduct {
	out := make([]domain.TrackedProduct, n)
	for i := range out {
		out[i] = product(i)
	}

	return out
}

func resultFor(t *testing.T, run domain.BatchRun, id domain.ProductID) domain.CheckResult {
	t.Helper()

	for _, r := range run.Results {
		if r.ProductID == id {
			return r
		}
	}
	t.Fatalf("no result for product %s", id)

	return domain.CheckResult{}
}

func TestRunner_EveryFetchFails(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 3})
	runID := domain.NewRunID()
	items := products(7)

	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), ".price").
		Return(nil, serrors.With(pagefetcher.ErrNavigation, "connection refused")).Times(len(items))
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil).Times(len(items))

	run := r.RunBatch(context.Background(), runID, items)

	require.Len(t, run.Results, len(items))
	require.Equal(t, 0, run.SucceededCount)
	require.Equal(t, len(items), run.FailedCount)
	require.Equal(t, domain.RunStatusCompleted, run.Status)
	for i, res := range run.Results {
		require.Equal(t, items[i].ID, res.ProductID, "results keep product order")
		require.Equal(t, runID, res.RunID)
		require.Equal(t, domain.ErrorKindNavigation, res.ErrorKind)
		require.False(t, res.CheckedAt.IsZero())
	}
}

func TestRunner_EmptyBatch(t *testing.T) {
	_, r := newTestRunner(t, monitor.Options{Workers: 2})

	run := r.RunBatch(context.Background(), domain.NewRunID(), nil)
	require.Empty(t, run.Results)
	require.Zero(t, run.SucceededCount+run.FailedCount)
	require.False(t, run.FinishedAt.Before(run.StartedAt))
}

func TestRunner_NotifiesOnDrop(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 1})
	p := product(1)

	m.fetcher.EXPECT().Fetch(gomock.Any(), p.URL, p.CSSSelector).Return([]string{"Now $24.99", "$39.99"}, nil)

	var notified decimal.Decimal
	m.notifier.EXPECT().Notify(gomock.Any(), p.EmailNotification, p, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []string, _ domain.TrackedProduct, observed decimal.Decimal) error {
			notified = observed

			return nil
		})

	var recorded domain.CheckResult
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, result domain.CheckResult) error {
			recorded = result

			return nil
		})

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{p})

	require.True(t, notified.Equal(decimal.RequireFromString("24.99")), "notified with %s", notified)
	res := run.Results[0]
	require.Equal(t, domain.DecisionNotify, res.Decision)
	require.True(t, res.Matched)
	require.True(t, res.Notified)
	require.False(t, res.Failed())
	require.Equal(t, "Now $24.99", res.ObservedPriceRaw)
	require.Equal(t, []string{"$39.99"}, res.ExtraMatches)
	require.Equal(t, "USD", res.CurrencyAssumed)
	require.NotNil(t, res.ObservedPrice)
	require.True(t, res.ObservedPrice.Equal(decimal.RequireFromString("24.99")))
	require.Equal(t, res, recorded)
	require.Equal(t, 1, run.SucceededCount)
}

func TestRunner_ThresholdIsInclusive(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 1})
	p := product(1)

	m.fetcher.EXPECT().Fetch(gomock.Any(), p.URL, p.CSSSelector).Return([]string{"USD 29.99"}, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil)

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{p})
	require.Equal(t, domain.DecisionNotify, run.Results[0].Decision)
}

func TestRunner_NoChangeAndMismatchDoNotNotify(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 2})
	above, euro := product(1), product(2)

	m.fetcher.EXPECT().Fetch(gomock.Any(), above.URL, gomock.Any()).Return([]string{"$34.50"}, nil)
	m.fetcher.EXPECT().Fetch(gomock.Any(), euro.URL, gomock.Any()).Return([]string{"19,99 €"}, nil)
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{above, euro})

	res := resultFor(t, run, above.ID)
	require.Equal(t, domain.DecisionNoChange, res.Decision)
	require.False(t, res.Matched)

	res = resultFor(t, run, euro.ID)
	require.Equal(t, domain.DecisionCurrencyMismatch, res.Decision)
	require.Equal(t, "EUR", res.CurrencyAssumed)
	require.False(t, res.Failed(), "a currency mismatch is a skip, not a failure")
	require.Equal(t, 2, run.SucceededCount)
}

func TestRunner_NoMatchContinuesBatch(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 1})
	missing, ok := product(1), product(2)

	m.fetcher.EXPECT().Fetch(gomock.Any(), missing.URL, gomock.Any()).
		Return(nil, serrors.With(pagefetcher.ErrNoMatch, "selector matched nothing"))
	m.fetcher.EXPECT().Fetch(gomock.Any(), ok.URL, gomock.Any()).Return([]string{"$10"}, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), ok, gomock.Any()).Return(nil)
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{missing, ok})

	res := resultFor(t, run, missing.ID)
	require.Equal(t, domain.ErrorKindNoMatch, res.ErrorKind)
	require.Empty(t, res.Decision)
	require.False(t, res.Notified)
	require.True(t, resultFor(t, run, ok.ID).Notified)
	require.Equal(t, 1, run.FailedCount)
	require.Equal(t, 1, run.SucceededCount)
}

func TestRunner_EmptyFetchIsNoMatch(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 1})
	p := product(1)

	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{}, nil)
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil)

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{p})
	require.Equal(t, domain.ErrorKindNoMatch, run.Results[0].ErrorKind)
}

func TestRunner_ParseFailures(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 2})
	empty, malformed := product(1), product(2)

	m.fetcher.EXPECT().Fetch(gomock.Any(), empty.URL, gomock.Any()).Return([]string{"Sold out"}, nil)
	m.fetcher.EXPECT().Fetch(gomock.Any(), malformed.URL, gomock.Any()).Return([]string{"1.234,567.8"}, nil)
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{empty, malformed})

	res := resultFor(t, run, empty.ID)
	require.Equal(t, domain.ErrorKindParseEmpty, res.ErrorKind)
	require.Equal(t, "Sold out", res.ObservedPriceRaw)
	require.Nil(t, res.ObservedPrice)

	res = resultFor(t, run, malformed.ID)
	require.Equal(t, domain.ErrorKindParseMalformed, res.ErrorKind)
	require.Nil(t, res.ObservedPrice)
}

func TestRunner_InvalidProductIsNotFetched(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 1})
	p := product(1)
	p.CSSSelector = " "

	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil)

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{p})
	require.Equal(t, domain.ErrorKindInvalidProduct, run.Results[0].ErrorKind)
}

func TestRunner_NotifyFailure(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 1})
	first, second := product(1), product(2)

	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"$5.00"}, nil).Times(2)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), first, gomock.Any()).Return(fmt.Errorf("smtp: 451 try later"))
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), second, gomock.Any()).Return(nil)
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{first, second})

	res := resultFor(t, run, first.ID)
	require.Equal(t, domain.ErrorKindNotifyFailed, res.ErrorKind)
	require.Equal(t, domain.DecisionNotify, res.Decision)
	require.True(t, res.Matched)
	require.False(t, res.Notified)
	require.NotNil(t, res.ObservedPrice)
	require.True(t, resultFor(t, run, second.ID).Notified)
	require.Equal(t, 1, run.FailedCount)
}

func TestRunner_RecordFailureIsTolerated(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 2})
	items := products(3)

	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"$99"}, nil).Times(3)
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection reset")).Times(3)

	run := r.RunBatch(context.Background(), domain.NewRunID(), items)
	require.Len(t, run.Results, 3)
	require.Equal(t, 3, run.SucceededCount)
}

func TestRunner_SlowProductDoesNotHoldOthers(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 2})
	items := products(4)
	slow := items[0]

	release := make(chan struct{})
	m.fetcher.EXPECT().Fetch(gomock.Any(), slow.URL, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _ string) ([]string, error) {
			select {
			case <-release:
			case <-ctx.Done():
			}

			return nil, serrors.With(serrors.ErrTimeout, "page load timed out")
		})
	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Not(slow.URL), gomock.Any()).Return([]string{"$50"}, nil).Times(3)

	var (
		mu       sync.Mutex
		recorded = make(map[domain.ProductID]bool)
	)
	fastDone := make(chan struct{})
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, result domain.CheckResult) error {
			mu.Lock()
			defer mu.Unlock()

			recorded[result.ProductID] = true
			if len(recorded) == 3 && !recorded[slow.ID] {
				close(fastDone)
			}

			return nil
		}).Times(4)

	done := make(chan domain.BatchRun)
	go func() { done <- r.RunBatch(context.Background(), domain.NewRunID(), items) }()

	select {
	case <-fastDone:
	case <-time.After(5 * time.Second):
		t.Fatal("fast products were not recorded while the slow product was loading")
	}
	close(release)

	run := <-done
	require.Equal(t, domain.ErrorKindTimeout, resultFor(t, run, slow.ID).ErrorKind)
	require.Equal(t, 3, run.SucceededCount)
}

func TestRunner_BatchBudget(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 1, BatchTimeout: 50 * time.Millisecond})
	items := products(3)

	// the first product uses up the budget, the others are never loaded
	m.fetcher.EXPECT().Fetch(gomock.Any(), items[0].URL, gomock.Any()).DoAndReturn(
		func(ctx context.Context, URL, _ string) ([]string, error) {
			<-ctx.Done()

			return nil, pagefetcher.TimeoutOrNavigation(ctx.Err(), URL)
		})
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	run := r.RunBatch(context.Background(), domain.NewRunID(), items)

	require.Len(t, run.Results, 3)
	for _, res := range run.Results {
		require.Equal(t, domain.ErrorKindTimeout, res.ErrorKind)
	}
	require.Equal(t, 3, run.FailedCount)
}

func TestRunner_PanicIsContained(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 1})
	p := product(1)

	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string, string) ([]string, error) { panic("tab crashed") })
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil)

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{p})
	require.Equal(t, domain.ErrorKindInternal, run.Results[0].ErrorKind)
	require.Contains(t, run.Results[0].ErrorMessage, "tab crashed")
}

func TestRunner_PinnedDecimalSeparator(t *testing.T) {
	m, r := newTestRunner(t, monitor.Options{Workers: 1, DecimalSeparator: ','})
	p := product(1)
	p.ExpectedPriceCurrency = "EUR"
	p.ExpectedPrice = decimal.RequireFromString("1500")

	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"1.234 €"}, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.recorder.EXPECT().StoreCheckResult(gomock.Any(), gomock.Any()).Return(nil)

	run := r.RunBatch(context.Background(), domain.NewRunID(), []domain.TrackedProduct{p})
	require.True(t, run.Results[0].ObservedPrice.Equal(decimal.NewFromInt(1234)))
}
