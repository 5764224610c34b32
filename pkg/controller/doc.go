// Package controller holds the HTTP middlewares shared by the price watch
// server: CORS headers, request IDs with access logging, and the pprof mux.
package controller
