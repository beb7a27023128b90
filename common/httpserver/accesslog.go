package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/telhawk-systems/sdk-mockservers/common/httputil"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/common/middleware"
)

type accessLogKey struct{}

// accessEntry is shared between AccessLog and the middleware below it. A
// handler that already logged the request sets logged.
type accessEntry struct {
	logged bool
}

// markLogged suppresses the access log line for the request behind ctx.
func markLogged(ctx context.Context) {
	if e, ok := ctx.Value(accessLogKey{}).(*accessEntry); ok {
		e.logged = true
	}
}

// AccessLog logs one line per request after it has been handled, unless a
// BodyLog further down the chain has already done so.
func AccessLog(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := middleware.NewStatusRecorder(w)
			entry := &accessEntry{}

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), accessLogKey{}, entry)))

			if entry.logged {
				return
			}
			logger.InfoContext(r.Context(), "request",
				logging.Method(r.Method),
				logging.Path(r.URL.Path),
				logging.Status(rec.Status),
				logging.ClientIP(httputil.ClientIP(r)),
				logging.Duration(time.Since(start).Milliseconds()),
			)
		})
	}
}
