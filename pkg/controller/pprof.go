package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where PprofMux expects to be mounted. pprof.Index resolves
// named profiles relative to it, so the prefix must not be stripped.
const PprofPrefix = "/debug/pprof/"

// PprofMux serves the net/http/pprof handlers under PprofPrefix.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	// Index also serves the named runtime profiles (heap, goroutine, ...)
	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
