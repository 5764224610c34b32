// Package pagefetcher defines how product pages are loaded and how the texts
// of the elements matching a CSS selector are extracted from them.
package pagefetcher

import (
	"context"
	"errors"
	"pricewatch/pkg/serrors"
	"time"
)

var (
	// ErrNavigation is returned when the page could not be loaded: DNS, TLS or
	// connection failures and non-2xx document responses.
	ErrNavigation = serrors.NewKind("NAVIGATION")
	// ErrNoMatch is returned when the selector matched nothing or could not be
	// parsed.
	ErrNoMatch = serrors.NewKind("NO_MATCH")
)

// DefaultTimeout bounds a single fetch when Options.Timeout is not set.
const DefaultTimeout = 30 * time.Second

// Options are shared by all Fetcher implementations.
type Options struct {
	// Timeout bounds navigation plus extraction of a single page.
	Timeout time.Duration
	// UserAgent overrides the default user agent when set.
	UserAgent string
}

// FetchTimeout returns the configured timeout or DefaultTimeout.
func (o Options) FetchTimeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}

	return o.Timeout
}

// Fetcher loads a page and returns the trimmed text content of every element
// matching selector, in document order. The first element is the canonical
// price text, the rest are diagnostics.
//
// Errors carry ErrNavigation, ErrNoMatch or serrors.ErrTimeout.
//
//go:generate mockgen -package mockpagefetcher -source=interface.go -destination=mock/mockpagefetcher.go *
type Fetcher interface {
	Fetch(ctx context.Context, URL, selector string) ([]string, error)
}

// TimeoutOrNavigation classifies a transport level failure: deadline
// overruns become serrors.ErrTimeout, everything else ErrNavigation.
func TimeoutOrNavigation(err error, URL string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "loading %s timed out", URL)
	}

	return serrors.Wrap(ErrNavigation, err, "could not load %s", URL)
}
