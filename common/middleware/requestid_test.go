package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name              string
		existingRequestID string
		expectNewID       bool
	}{
		{
			name:              "generates new request ID when not present",
			existingRequestID: "",
			expectNewID:       true,
		},
		{
			name:              "propagates existing request ID",
			existingRequestID: "existing-req-123",
			expectNewID:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = GetRequestID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("POST", "http://example.com/api/1/envelope/", nil)
			if tt.existingRequestID != "" {
				req.Header.Set(RequestIDHeader, tt.existingRequestID)
			}
			w := httptest.NewRecorder()

			RequestID(handler).ServeHTTP(w, req)

			responseRequestID := w.Header().Get(RequestIDHeader)
			if responseRequestID == "" {
				t.Fatal("expected X-Request-ID header in response")
			}
			if responseRequestID != captured {
				t.Errorf("response header %q doesn't match context %q", responseRequestID, captured)
			}

			if tt.expectNewID {
				if _, err := uuid.Parse(captured); err != nil {
					t.Errorf("expected valid UUID, got %q: %v", captured, err)
				}
			} else if captured != tt.existingRequestID {
				t.Errorf("expected request ID %q, got %q", tt.existingRequestID, captured)
			}
		})
	}
}

func TestRequestID_UniqueIDs(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		id := w.Header().Get(RequestIDHeader)
		if seen[id] {
			t.Fatalf("duplicate request ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGetRequestID(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}

	ctx := WithRequestID(context.Background(), "req-456")
	if got := GetRequestID(ctx); got != "req-456" {
		t.Errorf("expected %q, got %q", "req-456", got)
	}
}

func TestStatusRecorder(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBytes  int
	}{
		{
			name:       "implicit 200",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "explicit status and body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte("bad"))
			},
			wantStatus: http.StatusBadRequest,
			wantBytes:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewStatusRecorder(httptest.NewRecorder())
			tt.handler(rec, httptest.NewRequest("GET", "/", nil))
			rec.Flush()

			if rec.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", rec.Status, tt.wantStatus)
			}
			if rec.Bytes != tt.wantBytes {
				t.Errorf("Bytes = %d, want %d", rec.Bytes, tt.wantBytes)
			}
		})
	}
}
