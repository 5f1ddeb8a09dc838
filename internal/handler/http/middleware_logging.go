package http

import (
	"net/http"
	"time"

	"github.com/gillani-market/shoprent/internal/utils"
)

// responseWriter wraps http.ResponseWriter to capture the status code and the
// number of bytes written for the request log line.
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// withLogging attaches a request-scoped logger carrying a request id to the
// context and emits one structured line per completed request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestLogger := h.logger.With().
			Str("request_id", utils.NewID()).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Logger()
		r = r.WithContext(requestLogger.WithContext(r.Context()))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		requestLogger.Info().
			Int("status", rw.statusCode).
			Int("bytes", rw.bytesWritten).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
