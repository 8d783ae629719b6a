package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"paws-cafe/internal/platform/logger"
)

// StatusRecorder recibe el status de cada respuesta (métricas).
type StatusRecorder interface {
	RecordHTTPStatus(status int)
}

// statusRecorder envuelve http.ResponseWriter y guarda el primer status.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

// Write sin WriteHeader previo cuenta como 200.
func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// RequestLogger loguea una línea por request (method, path, status,
// duration_ms, request_id) y pasa el status a rec. rec puede ser nil.
// Nivel: error para 5xx, warn para 4xx, debug para el resto.
func RequestLogger(log logger.Logger, rec StatusRecorder) func(next http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sr := &statusRecorder{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(sr, r)

			if rec != nil {
				rec.RecordHTTPStatus(sr.statusCode)
			}

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      sr.statusCode,
				"duration_ms": float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond),
			}
			if id := chimw.GetReqID(r.Context()); id != "" {
				fields["request_id"] = id
			}

			switch {
			case sr.statusCode >= 500:
				log.Error("http_request", fields)
			case sr.statusCode >= 400:
				log.Warn("http_request", fields)
			default:
				log.Debug("http_request", fields)
			}
		})
	}
}
