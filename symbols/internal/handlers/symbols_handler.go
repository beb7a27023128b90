package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/telhawk-systems/sdk-mockservers/common/httputil"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/symbols/internal/metrics"
	"github.com/telhawk-systems/sdk-mockservers/symbols/internal/registry"
)

// ChunkUploadOptions is what sentry-cli reads from the chunk-upload endpoint
// before uploading debug files.
type ChunkUploadOptions struct {
	URL              string   `json:"url"`
	ChunkSize        int64    `json:"chunkSize"`
	ChunksPerRequest int      `json:"chunksPerRequest"`
	MaxFileSize      int64    `json:"maxFileSize"`
	MaxRequestSize   int64    `json:"maxRequestSize"`
	Concurrency      int      `json:"concurrency"`
	HashAlgorithm    string   `json:"hashAlgorithm"`
	Compression      []string `json:"compression"`
	Accept           []string `json:"accept"`
}

// AssembleFile is one entry of an assemble request, keyed by checksum.
type AssembleFile struct {
	Name    string   `json:"name"`
	DebugID string   `json:"debug_id,omitempty"`
	Chunks  []string `json:"chunks"`
}

// AssembleStatus tells the client that nothing needs to be uploaded.
type AssembleStatus struct {
	State         string   `json:"state"`
	MissingChunks []string `json:"missingChunks"`
}

type SymbolsHandler struct {
	registry     registry.Registry
	logger       *logging.Logger
	baseURL      string
	chunkUpload  string
	assemblePath string
}

func NewSymbolsHandler(reg registry.Registry, logger *logging.Logger, baseURL, org, project string) *SymbolsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SymbolsHandler{
		registry:     reg,
		logger:       logger,
		baseURL:      strings.TrimRight(baseURL, "/"),
		chunkUpload:  fmt.Sprintf("api/0/organizations/%s/chunk-upload", org),
		assemblePath: fmt.Sprintf("api/0/projects/%s/%s/files/difs/assemble", org, project),
	}
}

// Handle dispatches on the path with surrounding slashes ignored. Anything
// that is not a known endpoint gets an empty 200.
func (h *SymbolsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet && path == h.chunkUpload:
		h.ChunkUpload(w, r)
	case r.Method == http.MethodPost && path == h.assemblePath:
		h.Assemble(w, r)
	case r.Method == http.MethodGet, r.Method == http.MethodPost:
		httputil.WriteOK(w)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func (h *SymbolsHandler) ChunkUpload(w http.ResponseWriter, r *http.Request) {
	metrics.RequestsTotal.WithLabelValues("chunk_upload").Inc()
	h.logger.DebugContext(r.Context(), "Matched API endpoint", logging.Path(h.chunkUpload))

	httputil.WriteJSON(w, http.StatusOK, ChunkUploadOptions{
		URL:              h.baseURL + r.URL.RequestURI(),
		ChunkSize:        8388608,
		ChunksPerRequest: 64,
		MaxFileSize:      2147483648,
		MaxRequestSize:   33554432,
		Concurrency:      1,
		HashAlgorithm:    "sha1",
		Compression:      []string{"gzip"},
		Accept:           []string{"debug_files", "release_files", "pdbs", "sources", "bcsymbolmaps"},
	})
}

// Assemble reports every requested file as already present and counts it.
func (h *SymbolsHandler) Assemble(w http.ResponseWriter, r *http.Request) {
	metrics.RequestsTotal.WithLabelValues("assemble").Inc()
	h.logger.DebugContext(r.Context(), "Matched API endpoint", logging.Path(h.assemblePath))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req map[string]AssembleFile
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid assemble request", logging.Error(err))
		httputil.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	resp := make(map[string]AssembleStatus, len(req))
	for checksum, file := range req {
		resp[checksum] = AssembleStatus{State: "ok", MissingChunks: []string{}}

		metrics.AssembledFilesTotal.Inc()
		metrics.ChunksTotal.Add(float64(len(file.Chunks)))
		if err := h.registry.Register(r.Context(), file.Name, len(file.Chunks)); err != nil {
			metrics.RegistryErrors.Inc()
			h.logger.ErrorContext(r.Context(), "Failed to register upload", logging.Error(err), "name", file.Name)
		}
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// Stats exposes the registry totals while the server is running.
func (h *SymbolsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.registry.Stats(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to read upload stats", logging.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "failed to read upload stats")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *SymbolsHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
