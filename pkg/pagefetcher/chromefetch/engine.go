// Package chromefetch provides a pagefetcher.Fetcher backed by a headless
// Chrome driven over the DevTools protocol. One Engine owns one browser
// process for the lifetime of the application; every Fetch runs in its own
// incognito browser context and tab.
package chromefetch

import (
	"context"
	"errors"
	"fmt"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/pagefetcher"
	"pricewatch/pkg/serrors"
	"sync"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/go-faster/jx"
)

// Options configure the browser engine.
type Options struct {
	pagefetcher.Options

	// ExecPath is the Chrome/Chromium binary. Empty means auto-detect.
	ExecPath string
	// RemoteURL attaches to an already running browser (ws:// or http://
	// DevTools endpoint) instead of launching one.
	RemoteURL string
	// Headless runs the launched browser without a window.
	Headless bool
	// NoSandbox disables the Chrome sandbox, required when running as root in
	// containers.
	NoSandbox bool
}

// Engine is a process-wide browser. Start must be called before Fetch and
// Close at shutdown. Fetch is safe for concurrent use.
type Engine struct {
	opts Options

	mu            sync.RWMutex
	browserCtx    context.Context //nolint: containedctx
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
}

// Ensure Engine conforms to the pagefetcher.Fetcher interface at compile time.
var _ pagefetcher.Fetcher = (*Engine)(nil)

// New constructs an Engine. No browser is launched until Start.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Start launches (or attaches to) the browser. Calling Start on a running
// engine is a no-op.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browserCtx != nil {
		return nil
	}

	// the browser outlives the caller's context but keeps its logger
	base := context.WithoutCancel(ctx)

	var (
		allocCtx    context.Context
		allocCancel context.CancelFunc
	)
	if e.opts.RemoteURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(base, e.opts.RemoteURL)
	} else {
		opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
		if !e.opts.Headless {
			opts = append(opts, chromedp.Flag("headless", false))
		}
		if e.opts.NoSandbox {
			opts = append(opts, chromedp.NoSandbox)
		}
		if e.opts.ExecPath != "" {
			opts = append(opts, chromedp.ExecPath(e.opts.ExecPath))
		}
		allocCtx, allocCancel = chromedp.NewExecAllocator(base, opts...)
	}

	log := logger.Get(ctx).Named("chromedp").Sugar()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(log.Infof),
		chromedp.WithErrorf(log.Errorf),
	)
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()

		return fmt.Errorf("could not start browser: %w", err)
	}

	e.browserCtx = browserCtx
	e.browserCancel = browserCancel
	e.allocCancel = allocCancel
	logger.Info(ctx, "browser engine started")

	return nil
}

// Close shuts the browser down. Close on a stopped engine is a no-op.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browserCtx == nil {
		return nil
	}

	err := chromedp.Cancel(e.browserCtx)
	e.browserCancel()
	e.allocCancel()
	e.browserCtx, e.browserCancel, e.allocCancel = nil, nil, nil

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("could not close browser: %w", err)
	}

	return nil
}

// Fetch opens URL in a fresh tab, waits until the document is parsed and
// returns the trimmed textContent of every element matching selector.
// Pending images, fonts or trackers do not hold the extraction back.
func (e *Engine) Fetch(ctx context.Context, URL, selector string) ([]string, error) {
	e.mu.RLock()
	browserCtx := e.browserCtx
	e.mu.RUnlock()
	if browserCtx == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "browser engine is not started")
	}

	tabCtx, closeTab := chromedp.NewContext(browserCtx, chromedp.WithNewBrowserContext())
	defer closeTab()
	stop := context.AfterFunc(ctx, closeTab)
	defer stop()

	tabCtx, cancel := context.WithTimeout(tabCtx, e.opts.FetchTimeout())
	defer cancel()

	if e.opts.UserAgent != "" {
		if err := chromedp.Run(tabCtx, emulation.SetUserAgentOverride(e.opts.UserAgent)); err != nil {
			return nil, e.failure(ctx, tabCtx, err, URL)
		}
	}

	status, err := navigate(tabCtx, URL)
	if err != nil {
		if errors.Is(err, pagefetcher.ErrNavigation) {
			return nil, err
		}

		return nil, e.failure(ctx, tabCtx, err, URL)
	}
	if status != 0 && (status < 200 || status >= 300) {
		return nil, serrors.With(pagefetcher.ErrNavigation, "loading %s: unexpected status %d", URL, status)
	}

	var texts []string
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(extractScript(selector), &texts)); err != nil {
		var exc *runtime.ExceptionDetails
		if errors.As(err, &exc) {
			return nil, serrors.Wrap(pagefetcher.ErrNoMatch, err, "invalid selector %q", selector)
		}

		return nil, e.failure(ctx, tabCtx, err, URL)
	}
	if len(texts) == 0 {
		return nil, serrors.With(pagefetcher.ErrNoMatch, "selector %q matched nothing on %s", selector, URL)
	}

	return texts, nil
}

func (e *Engine) failure(ctx, tabCtx context.Context, err error, URL string) error {
	switch {
	case errors.Is(tabCtx.Err(), context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "loading %s timed out", URL)
	case ctx.Err() != nil:
		return serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "loading %s was cancelled", URL)
	}

	return pagefetcher.TimeoutOrNavigation(err, URL)
}

// extractScript builds the expression evaluated in the page. It returns an
// empty array when nothing matches so that the caller never waits for the
// selector to appear.
func extractScript(selector string) string {
	var enc jx.Encoder
	enc.Str(selector)

	return "Array.from(document.querySelectorAll(" + enc.String() + "), e => (e.textContent || '').trim())"
}
