package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/crash/internal/handlers"
)

func TestRouter(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		body         []byte
		expectStatus int
		expectLog    string
	}{
		{name: "get", method: http.MethodGet, path: "/", expectStatus: http.StatusOK, expectLog: "GET / HTTP/1.1"},
		{name: "minidump post", method: http.MethodPost, path: "/api/1/minidump/", body: []byte{'M', 'D', 'M', 'P', 0x93, 0xa7}, expectStatus: http.StatusOK, expectLog: "4d444d5093a7"},
		{name: "text post", method: http.MethodPost, path: "/api/1/envelope/", body: []byte(`{"crash":true}`), expectStatus: http.StatusOK, expectLog: `{\"crash\":true}`},
		{name: "delete", method: http.MethodDelete, path: "/", expectStatus: http.StatusNotImplemented, expectLog: `"status":501`},
		{name: "health", method: http.MethodGet, path: "/healthz", expectStatus: http.StatusOK, expectLog: "GET /healthz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewWithWriter(&buf, slog.LevelInfo, "json")
			router := NewRouter(handlers.NewCrashHandler(), logger, 1000, 0)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, bytes.NewReader(tt.body)))

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Contains(t, buf.String(), tt.expectLog)
		})
	}
}

func TestRouter_PreviewLimit(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelInfo, "json")
	router := NewRouter(handlers.NewCrashHandler(), logger, 10, 0)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("z", 50))))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"body":"zzzzzzzzzz"`)
}
