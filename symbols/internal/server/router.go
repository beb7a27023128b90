package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/telhawk-systems/sdk-mockservers/symbols/internal/handlers"
)

// NewRouter constructs a ServeMux with the symbol API routes registered.
func NewRouter(h *handlers.SymbolsHandler) http.Handler {
	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/upload-stats", h.Stats)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// sentry-cli endpoints and everything else
	mux.HandleFunc("/", h.Handle)

	return mux
}
