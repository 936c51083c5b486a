package widget

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ecomodal/footprint/core/logger"
)

// RequestIDHeader carries the request correlation id. Incoming values are
// propagated, absent ones replaced with a fresh uuid.
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// WithRequestLog wraps a handler with request id propagation and an access
// log line per request.
func WithRequestLog(log logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		if log != nil {
			log.Debugw("http request", map[string]any{
				"request_id":  id,
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"status":      rec.status,
				"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			})
		}
	})
}
