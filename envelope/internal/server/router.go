package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/handlers"
)

// NewRouter constructs a ServeMux with the envelope routes registered.
// Request IDs, access logs and /STOP come from httpserver.
func NewRouter(h *handlers.EnvelopeHandler) http.Handler {
	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("/healthz", h.Health)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// Everything else is an SDK request
	mux.HandleFunc("/", h.Handle)

	return mux
}
