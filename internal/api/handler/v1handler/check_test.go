package v1handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"pricewatch/internal/api/handler/v1handler"
	"pricewatch/pkg/pagefetcher"
	"pricewatch/pkg/serrors"
	"strings"
	"testing"

	mockmonitor "pricewatch/internal/monitor/mock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	productURL = "https://shop.example.com/item"
	selector   = "span.price"
)

func newTestServer(t *testing.T) (*mockmonitor.MockMonitor, *http.ServeMux) {
	t.Helper()

	mon := mockmonitor.NewMockMonitor(gomock.NewController(t))
	sec, err := v1handler.NewSecHandler(nil)
	require.NoError(t, err)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Monitor: mon}).Mount(mux, sec)

	return mon, mux
}

func serve(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestCheck_MethodNotAllowed(t *testing.T) {
	_, mux := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := serve(mux, httptest.NewRequest(method, "/v1/check?productUrl=x&cssSelector=y", nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		require.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	}
}

func TestCheck_MissingParams(t *testing.T) {
	_, mux := newTestServer(t)

	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "nothing", req: httptest.NewRequest(http.MethodPost, "/v1/check", nil)},
		{name: "no selector", req: httptest.NewRequest(http.MethodPost, "/v1/check?productUrl="+url.QueryEscape(productURL), nil)},
		{name: "blank selector", req: httptest.NewRequest(http.MethodPost,
			"/v1/check?cssSelector=%20&productUrl="+url.QueryEscape(productURL), nil)},
		{name: "json without selector", req: func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(`{"productUrl":"`+productURL+`"}`))
			r.Header.Set("Content-Type", "application/json")

			return r
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the monitor mock has no expectations: no page may be loaded
			rec := serve(mux, tt.req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "required")
		})
	}
}

func TestCheck_MalformedJSON(t *testing.T) {
	_, mux := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(`{"productUrl": 42}`))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(mux, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheck_Sources(t *testing.T) {
	tests := []struct {
		name string
		req  func() *http.Request
	}{
		{name: "query", req: func() *http.Request {
			q := url.Values{"productUrl": {productURL}, "cssSelector": {selector}}

			return httptest.NewRequest(http.MethodPost, "/v1/check?"+q.Encode(), nil)
		}},
		{name: "form", req: func() *http.Request {
			q := url.Values{"productUrl": {productURL}, "cssSelector": {selector}}
			r := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(q.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			return r
		}},
		{name: "json", req: func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/v1/check",
				strings.NewReader(fmt.Sprintf(`{"productUrl":%q,"cssSelector":%q,"extra":[1,2]}`, productURL, selector)))
			r.Header.Set("Content-Type", "application/json; charset=utf-8")

			return r
		}},
		{name: "query and json", req: func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/v1/check?productUrl="+url.QueryEscape(productURL),
				strings.NewReader(fmt.Sprintf(`{"cssSelector":%q}`, selector)))
			r.Header.Set("Content-Type", "application/json")

			return r
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mon, mux := newTestServer(t)
			mon.EXPECT().CheckURL(gomock.Any(), productURL, selector).Return(decimal.RequireFromString("1234.56"), nil)

			rec := serve(mux, tt.req())
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "1234.56", rec.Body.String())
			require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		})
	}
}

func TestCheck_Failures(t *testing.T) {
	q := url.Values{"productUrl": {productURL}, "cssSelector": {selector}}

	t.Run("scrape failure is 500", func(t *testing.T) {
		mon, mux := newTestServer(t)
		mon.EXPECT().CheckURL(gomock.Any(), productURL, selector).
			Return(decimal.Zero, serrors.With(pagefetcher.ErrNoMatch, `selector "span.price" matched no element`))

		rec := serve(mux, httptest.NewRequest(http.MethodPost, "/v1/check?"+q.Encode(), nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "matched no element")
	})

	t.Run("invalid url is 400", func(t *testing.T) {
		mon, mux := newTestServer(t)
		mon.EXPECT().CheckURL(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(decimal.Zero, serrors.With(serrors.ErrBadRequest, "invalid product URL"))

		bad := url.Values{"productUrl": {"ftp://x"}, "cssSelector": {selector}}
		rec := serve(mux, httptest.NewRequest(http.MethodPost, "/v1/check?"+bad.Encode(), nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
