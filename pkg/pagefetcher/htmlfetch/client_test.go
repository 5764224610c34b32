package htmlfetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"pricewatch/pkg/pagefetcher"
	"pricewatch/pkg/pagefetcher/htmlfetch"
	"pricewatch/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const productPage = `<!doctype html>
<html><body>
  <h1>Espresso Grinder</h1>
  <span class="price">  $24.99 </span>
  <div class="related"><span class="price">$31.00</span></div>
</body></html>`

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return srv
}

func TestClient_Fetch_matches(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "pricewatch-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(productPage))
	})

	c := htmlfetch.New(srv.Client(), pagefetcher.Options{UserAgent: "pricewatch-test"})
	texts, err := c.Fetch(context.Background(), srv.URL, ".price")
	require.NoError(t, err)
	require.Equal(t, []string{"$24.99", "$31.00"}, texts)
}

func TestClient_Fetch_noMatch(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(productPage))
	})

	c := htmlfetch.New(srv.Client(), pagefetcher.Options{})
	_, err := c.Fetch(context.Background(), srv.URL, "#missing")
	require.ErrorIs(t, err, pagefetcher.ErrNoMatch)
}

func TestClient_Fetch_invalidSelector(t *testing.T) {
	called := false
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})

	c := htmlfetch.New(srv.Client(), pagefetcher.Options{})
	_, err := c.Fetch(context.Background(), srv.URL, "span[")
	require.ErrorIs(t, err, pagefetcher.ErrNoMatch)
	require.False(t, called, "page must not be loaded for an invalid selector")
}

func TestClient_Fetch_non2xx(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	c := htmlfetch.New(srv.Client(), pagefetcher.Options{})
	_, err := c.Fetch(context.Background(), srv.URL, ".price")
	require.ErrorIs(t, err, pagefetcher.ErrNavigation)
	require.Contains(t, err.Error(), "404")
}

func TestClient_Fetch_unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := htmlfetch.New(http.DefaultClient, pagefetcher.Options{})
	_, err := c.Fetch(context.Background(), url, ".price")
	require.ErrorIs(t, err, pagefetcher.ErrNavigation)
}

func TestClient_Fetch_timeout(t *testing.T) {
	release := make(chan struct{})
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	c := htmlfetch.New(srv.Client(), pagefetcher.Options{Timeout: 50 * time.Millisecond})
	_, err := c.Fetch(context.Background(), srv.URL, ".price")
	require.ErrorIs(t, err, serrors.ErrTimeout)
}
