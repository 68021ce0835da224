// Package httpapi exposes the normalization service over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"transcript-normalizer-service/internal/observability/metrics"
	"transcript-normalizer-service/internal/parser"
	"transcript-normalizer-service/internal/service/normalize"
)

// NewRouter constructs the HTTP router for the service.
func NewRouter(svc *normalize.Service) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health endpoints
	r.Get("/v1/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/readiness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	// API routes
	r.Route("/v1", func(r chi.Router) {
		r.Post("/transcripts/normalize", handleNormalize(svc))
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleNormalize accepts a raw provider payload in the request body
// and the declared source format as the "format" query parameter.
func handleNormalize(svc *normalize.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m := metrics.DefaultMetrics

		format, err := parser.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			m.RequestsTotal.WithLabelValues("bad_request").Inc()
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			m.RequestsTotal.WithLabelValues("bad_request").Inc()
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be a JSON object"})
			return
		}
		if raw == nil {
			m.RequestsTotal.WithLabelValues("bad_request").Inc()
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be a JSON object"})
			return
		}

		result, err := svc.Normalize(r.Context(), raw, format)
		if err != nil {
			m.RequestsTotal.WithLabelValues("unprocessable").Inc()
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}

		m.RequestsTotal.WithLabelValues("ok").Inc()
		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
