package controller

import (
	"net/http"
	"strings"
)

// CORSMethods are the methods browsers may use against the API.
var CORSMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions} //nolint: gochecknoglobals

// WithCORS sets permissive CORS headers on every response. OPTIONS preflight
// requests are answered with 204 and never reach next.
func WithCORS(next http.Handler) http.Handler {
	methods := strings.Join(CORSMethods, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept, Origin, Cache-Control, X-Request-Id")
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Expose-Headers", "Location, X-Request-Id")

		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
