package middleware

import (
	"net/http"
	"time"

	"github.com/chris/travel-payments/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewStructuredLogger stores a request-scoped logger in the request context
// and logs every completed request. Mount it after chi's RequestID so the
// request ID is attached to every log line.
func NewStructuredLogger(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			tww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqLog := log.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
			ctx := logger.WithContext(r.Context(), reqLog)

			start := time.Now()
			defer func() {
				status := tww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				event := reqLog.Info()
				msg := "request completed"
				if status >= 500 {
					event = reqLog.Error()
					msg = "server error"
				}
				event.
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote_addr", r.RemoteAddr).
					Int("status", status).
					Int("bytes", tww.BytesWritten()).
					Dur("latency", time.Since(start)).
					Msg(msg)
			}()

			next.ServeHTTP(tww, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
