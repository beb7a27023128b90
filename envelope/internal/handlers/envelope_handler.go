package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/telhawk-systems/sdk-mockservers/common/httputil"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/service"
)

// Ingester stores one envelope body.
type Ingester interface {
	Ingest(ctx context.Context, body []byte) (*service.Result, error)
	NotificationStatus() string
}

type EnvelopeHandler struct {
	service     Ingester
	logger      *logging.Logger
	pathMarker  string
	maxBodySize int64
}

func NewEnvelopeHandler(svc Ingester, logger *logging.Logger, pathMarker string, maxBodySize int64) *EnvelopeHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if pathMarker == "" {
		pathMarker = "/envelope/"
	}
	return &EnvelopeHandler{
		service:     svc,
		logger:      logger,
		pathMarker:  pathMarker,
		maxBodySize: maxBodySize,
	}
}

// Handle answers every SDK request with 200. Envelope bodies are stored after
// the status line has been written; failures only reach the log.
func (h *EnvelopeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		httputil.WriteOK(w)
	case http.MethodPost, http.MethodPut:
		h.handlePost(w, r)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func (h *EnvelopeHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	body, err := httputil.ReadBody(w, r, h.maxBodySize)
	if err != nil {
		if errors.Is(err, httputil.ErrBodyTooLarge) {
			h.logger.WarnContext(r.Context(), "Envelope rejected", logging.Error(err), logging.Path(r.URL.Path))
			httputil.WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		h.logger.WarnContext(r.Context(), "Failed to read request body", logging.Error(err))
		httputil.WriteOK(w)
		return
	}

	httputil.WriteOK(w)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	if !strings.Contains(r.URL.Path, h.pathMarker) {
		h.logger.InfoContext(r.Context(), "Received request",
			"request", httputil.RequestLine(r),
			logging.Bytes(len(body)),
		)
		return
	}

	// The client may hang up once it has its 200; the envelope still gets stored.
	ctx := context.WithoutCancel(r.Context())
	if _, err := h.service.Ingest(ctx, body); err != nil {
		h.logger.ErrorContext(ctx, "Envelope not stored", logging.Error(err), logging.Path(r.URL.Path))
	}
}

// Health always answers 200. A lost NATS connection only degrades envelope
// events, so it is reported but does not fail the check.
func (h *EnvelopeHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":        "healthy",
		"notifications": h.service.NotificationStatus(),
	})
}
