package controller_test

import (
	"net/http"
	"net/http/httptest"
	"pricewatch/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	tests := []struct {
		path     string
		contains string
	}{
		{path: "/debug/pprof/", contains: "Types of profiles available"},
		{path: "/debug/pprof/cmdline"},
		{path: "/debug/pprof/goroutine?debug=1", contains: "goroutine profile:"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, rec.Header().Get("Content-Type"))
			require.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}
