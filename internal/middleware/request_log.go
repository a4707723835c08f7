package middleware

import (
	"net/http"
	"time"

	"virtual-pet/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog escribe una línea por request con el request id de chi.
// Va después de chimw.RequestID en la cadena.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	log = logger.OrNop(log)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			fields := logger.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if id := chimw.GetReqID(r.Context()); id != "" {
				fields["request_id"] = id
			}

			switch {
			case ww.Status() >= 500:
				log.Error("http request", fields)
			case ww.Status() >= 400:
				log.Warn("http request", fields)
			default:
				log.Info("http request", fields)
			}
		})
	}
}
