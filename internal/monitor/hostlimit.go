package monitor

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// hostLimiter spaces page loads per host across all workers and runs.
type hostLimiter struct {
	every time.Duration
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newHostLimiter(every time.Duration, burst int) *hostLimiter {
	if every <= 0 {
		return nil
	}

	return &hostLimiter{
		every:    every,
		burst:    max(burst, 1),
		limiters: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a page of URL's host may be loaded. A nil limiter never
// blocks.
func (h *hostLimiter) Wait(ctx context.Context, URL string) error {
	if h == nil {
		return nil
	}

	u, err := url.Parse(URL)
	if err != nil {
		return nil //nolint: nilerr // the fetcher reports unusable URLs
	}

	return h.limiter(strings.ToLower(u.Hostname())).Wait(ctx)
}

func (h *hostLimiter) limiter(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	l, ok := h.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Every(h.every), h.burst)
		h.limiters[host] = l
	}

	return l
}
