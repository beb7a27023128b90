package server

import (
	"net/http"

	"github.com/telhawk-systems/sdk-mockservers/common/httpserver"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/crash/internal/handlers"
)

// NewRouter registers the crash routes and logs every request body.
func NewRouter(h *handlers.CrashHandler, logger *logging.Logger, previewLimit int, maxBodySize int64) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/", h.Handle)

	return httpserver.BodyLog(logger, previewLimit, maxBodySize)(mux)
}
