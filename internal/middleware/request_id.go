package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/FuFicFac/vibe-writer/internal/httputil"
)

// RequestIDHeader carries the correlation ID in requests and responses
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a correlation ID, reusing the caller's
// X-Request-ID when it is a valid UUID
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, httputil.WithRequestID(r, id))
	})
}
