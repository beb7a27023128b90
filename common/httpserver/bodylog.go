package httpserver

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/telhawk-systems/sdk-mockservers/common/httputil"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/common/middleware"
)

// BodyLog logs each request line and status together with a preview of the
// POST body. The body is buffered (at most maxBody bytes) and handed on to next
// unchanged. Behind AccessLog it replaces the access log line.
func BodyLog(logger *logging.Logger, previewLimit int, maxBody int64) func(http.Handler) http.Handler {
	if previewLimit <= 0 {
		previewLimit = httputil.DefaultPreviewLimit
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			markLogged(r.Context())

			var preview string
			if r.Method == http.MethodPost && r.Body != nil {
				body, err := httputil.ReadBody(w, r, maxBody)
				if err != nil {
					logger.WarnContext(r.Context(), "Failed to read request body", logging.Error(err))
					status := http.StatusBadRequest
					if errors.Is(err, httputil.ErrBodyTooLarge) {
						status = http.StatusRequestEntityTooLarge
					}
					httputil.WriteError(w, status, err.Error())
					return
				}
				preview = httputil.BodyPreview(body, previewLimit)
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			rec := middleware.NewStatusRecorder(w)
			next.ServeHTTP(rec, r)

			attrs := []any{
				"request", httputil.RequestLine(r),
				logging.Status(rec.Status),
				logging.ClientIP(httputil.ClientIP(r)),
				logging.Duration(time.Since(start).Milliseconds()),
			}
			if preview != "" {
				attrs = append(attrs, logging.Body(preview))
			}
			logger.InfoContext(r.Context(), "Received request", attrs...)
		})
	}
}
