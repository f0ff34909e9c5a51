package middleware

import (
	"net/http"
	"time"

	"github.com/degennews/web/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per request with method, path, status and
// duration.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.Info("%s %s %d %s request_id=%s",
				r.Method,
				r.URL.Path,
				rec.status,
				time.Since(start),
				RequestIDFromContext(r.Context()),
			)
		})
	}
}
