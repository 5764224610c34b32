package chromefetch

import (
	"context"
	"pricewatch/pkg/pagefetcher"
	"pricewatch/pkg/serrors"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// domContentLoaded is the lifecycle event fired once the document is parsed,
// before images, fonts and other subresources finish loading.
const domContentLoaded = "DOMContentLoaded"

// navigation collects the document responses and DOMContentLoaded events of a
// tab, keyed by loader. Events may arrive before Page.navigate returns the
// loader ID, so they are recorded rather than awaited directly.
type navigation struct {
	mu       sync.Mutex
	statuses map[cdp.LoaderID]int64
	parsed   map[cdp.LoaderID]bool
	changed  chan struct{}
}

func newNavigation() *navigation {
	return &navigation{
		statuses: make(map[cdp.LoaderID]int64),
		parsed:   make(map[cdp.LoaderID]bool),
		changed:  make(chan struct{}, 1),
	}
}

func (n *navigation) listen(ev any) {
	n.mu.Lock()
	switch ev := ev.(type) {
	case *network.EventResponseReceived:
		if ev.Type != network.ResourceTypeDocument || ev.Response == nil {
			n.mu.Unlock()

			return
		}
		n.statuses[ev.LoaderID] = ev.Response.Status
	case *page.EventLifecycleEvent:
		if ev.Name != domContentLoaded {
			n.mu.Unlock()

			return
		}
		n.parsed[ev.LoaderID] = true
	default:
		n.mu.Unlock()

		return
	}
	n.mu.Unlock()

	select {
	case n.changed <- struct{}{}:
	default:
	}
}

// wait blocks until the document of loader is parsed and returns its HTTP
// status, zero when no response was observed.
func (n *navigation) wait(ctx context.Context, loader cdp.LoaderID) (int64, error) {
	for {
		n.mu.Lock()
		parsed, status := n.parsed[loader], n.statuses[loader]
		n.mu.Unlock()
		if parsed {
			return status, nil
		}

		select {
		case <-n.changed:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// navigate loads URL in the tab of tabCtx and returns once the DOM is parsed.
// Subresources may still be loading.
func navigate(tabCtx context.Context, URL string) (int64, error) {
	nav := newNavigation()

	// creates the tab so that the listener is bound to its target
	if err := chromedp.Run(tabCtx, network.Enable(), page.SetLifecycleEventsEnabled(true)); err != nil {
		return 0, err
	}
	chromedp.ListenTarget(tabCtx, nav.listen)

	var status int64
	err := chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		_, loader, errorText, err := page.Navigate(URL).Do(ctx)
		if err != nil {
			return err
		}
		if errorText != "" {
			return serrors.With(pagefetcher.ErrNavigation, "loading %s: %s", URL, errorText)
		}

		status, err = nav.wait(ctx, loader)

		return err
	}))

	return status, err
}
