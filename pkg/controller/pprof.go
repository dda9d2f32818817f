package controller

import (
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
)

// profiles are the runtime profiles served by name.
var profiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} //nolint: gochecknoglobals

// PprofMux returns a router exposing the net/http/pprof handlers at its root.
// Mount it under a debug prefix of the main router.
func PprofMux() chi.Router {
	r := chi.NewRouter()

	r.Get("/", pprof.Index)
	r.Get("/cmdline", pprof.Cmdline)
	r.Get("/profile", pprof.Profile)
	r.HandleFunc("/symbol", pprof.Symbol)
	r.Get("/trace", pprof.Trace)
	for _, name := range profiles {
		r.Handle("/"+name, pprof.Handler(name))
	}

	return r
}
