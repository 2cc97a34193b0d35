package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the relay router. The relay answers on every path: OPTIONS
// is a preflight, POST is a submission and any other method is refused.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		withCORS,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecover,
	)

	router.Options("/", h.preflight)
	router.Options("/*", h.preflight)
	router.Post("/", h.relay)
	router.Post("/*", h.relay)

	router.MethodNotAllowed(rejectMethod)
	router.NotFound(rejectMethod)

	return router
}

// InitMetrics builds the router of the metrics listener, or returns nil
// when the handler has no metrics.
func (h *Handler) InitMetrics() *chi.Mux {
	if h.metrics == nil {
		return nil
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}
