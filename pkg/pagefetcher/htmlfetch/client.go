// Package htmlfetch provides a pagefetcher.Fetcher that downloads the page
// with a plain HTTP GET and evaluates the selector against the static HTML.
// Prices rendered by JavaScript are invisible to it.
package htmlfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"pricewatch/pkg/pagefetcher"
	"pricewatch/pkg/serrors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

const maxBodySize = 10 << 20

// Client fetches pages over HTTP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       pagefetcher.Options
}

// Ensure Client conforms to the pagefetcher.Fetcher interface at compile time.
var _ pagefetcher.Fetcher = (*Client)(nil)

// New constructs a Client on top of httpClient.
func New(httpClient *http.Client, opts pagefetcher.Options) *Client {
	return &Client{
		httpClient: httpClient,
		opts:       opts,
	}
}

// Fetch downloads URL and returns the texts of the nodes matching selector.
func (c *Client) Fetch(ctx context.Context, URL, selector string) ([]string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, serrors.Wrap(pagefetcher.ErrNoMatch, err, "invalid selector %q", selector)
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.FetchTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, serrors.Wrap(pagefetcher.ErrNavigation, err, "could not create request")
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pagefetcher.TimeoutOrNavigation(err, URL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(pagefetcher.ErrNavigation, "loading %s: unexpected status %d", URL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, pagefetcher.TimeoutOrNavigation(fmt.Errorf("could not parse document: %w", err), URL)
	}

	var texts []string
	doc.FindMatcher(matcher).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	if len(texts) == 0 {
		return nil, serrors.With(pagefetcher.ErrNoMatch, "selector %q matched nothing on %s", selector, URL)
	}

	return texts, nil
}
