package handlers

import (
	"net/http"

	"github.com/telhawk-systems/sdk-mockservers/common/httputil"
)

// CrashHandler acknowledges whatever a crashing app manages to send. The
// request itself is logged by httpserver.BodyLog.
type CrashHandler struct{}

func NewCrashHandler() *CrashHandler {
	return &CrashHandler{}
}

func (h *CrashHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
		httputil.WriteOK(w)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func (h *CrashHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
