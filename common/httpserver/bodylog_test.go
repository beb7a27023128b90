package httpserver

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telhawk-systems/sdk-mockservers/common/config"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
)

func TestBodyLog(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		body          []byte
		expectLogged  string
		expectNoField bool
	}{
		{name: "text body", method: http.MethodPost, body: []byte(`{"a":1}`), expectLogged: `{\"a\":1}`},
		{name: "binary body is hex", method: http.MethodPost, body: []byte{0xff, 0x00, 0x10}, expectLogged: "ff0010"},
		{name: "long body is cut", method: http.MethodPost, body: []byte(strings.Repeat("a", 1500)), expectLogged: strings.Repeat("a", 1000) + `"`},
		{name: "get has no body", method: http.MethodGet, expectNoField: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewWithWriter(&buf, slog.LevelInfo, "json")

			var seen []byte
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = io.ReadAll(r.Body)
				w.WriteHeader(http.StatusAccepted)
			})

			req := httptest.NewRequest(tt.method, "/api/0/x/", bytes.NewReader(tt.body))
			rec := httptest.NewRecorder()
			BodyLog(logger, 0, 0)(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusAccepted, rec.Code)
			out := buf.String()
			assert.Contains(t, out, "Received request")
			assert.Contains(t, out, `"status":202`)
			assert.Contains(t, out, tt.method+" /api/0/x/ HTTP/1.1")
			if tt.expectNoField {
				assert.NotContains(t, out, `"body"`)
				return
			}
			assert.Equal(t, tt.body, seen, "handler must see the full body")
			assert.Contains(t, out, tt.expectLogged)
			assert.NotContains(t, out, strings.Repeat("a", 1001))
		})
	}
}

func TestBodyLog_TooLarge(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 100)))
	rec := httptest.NewRecorder()
	BodyLog(logging.Discard(), 0, 10)(next).ServeHTTP(rec, req)

	require.False(t, called)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestBodyLog_ReplacesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelInfo, "json")
	s, err := New(config.ServerConfig{URL: config.DefaultURL}, BodyLog(logger, 0, 0)(okHandler()), logger)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/0/projects/x/", strings.NewReader("payload"))
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "one log line per request: %s", buf.String())
	assert.Contains(t, lines[0], "Received request")
	assert.Contains(t, lines[0], `"client_ip":"203.0.113.9"`)
	assert.Contains(t, lines[0], `"body":"payload"`)
}

func TestAccessLog_WithoutBodyLog(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelInfo, "json")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	AccessLog(logger)(okHandler()).ServeHTTP(w, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"request"`)
	assert.Contains(t, lines[0], `"client_ip":"192.0.2.1"`)
}
