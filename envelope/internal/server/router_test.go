package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telhawk-systems/sdk-mockservers/common/config"
	"github.com/telhawk-systems/sdk-mockservers/common/httpserver"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/handlers"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/service"
	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/storage"
)

func newTestRouter(t *testing.T) (http.Handler, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := service.NewEnvelopeService(store, nil, logging.Discard())
	h := handlers.NewEnvelopeHandler(svc, logging.Discard(), "/envelope/", 1<<20)
	return NewRouter(h), store
}

func TestRouter_Routes(t *testing.T) {
	router, store := newTestRouter(t)

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		expectStatus int
		expectBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/healthz", expectStatus: http.StatusOK, expectBody: "healthy"},
		{name: "metrics", method: http.MethodGet, path: "/metrics", expectStatus: http.StatusOK, expectBody: "mockservers_envelope"},
		{name: "envelope", method: http.MethodPost, path: "/api/1/envelope/", body: "{}", expectStatus: http.StatusOK},
		{name: "unknown get", method: http.MethodGet, path: "/whatever", expectStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			if tt.expectBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectBody)
			}
		})
	}

	assert.Len(t, store.Records(), 1)
}

func TestRouter_BehindHTTPServer(t *testing.T) {
	router, store := newTestRouter(t)

	srv, err := httpserver.New(config.ServerConfig{URL: config.DefaultURL}, router, logging.Discard())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/1/envelope/", strings.NewReader("{}\n{\"type\":\"event\"}\n{}"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Len(t, store.Records(), 1)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, httpserver.StopPath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case <-srv.Stopped():
	default:
		t.Fatal("expected /STOP to stop the server")
	}
}
