package middleware

import (
	"net/http"

	"github.com/andrewpaige1/edusense-api/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const RequestIDHeader = "X-Request-ID"

// RequestID echoes an incoming X-Request-ID or mints a nanoid, then exposes it on
// both the response header and the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			generated, err := gonanoid.New()
			if err != nil {
				http.Error(w, "Failed to generate request ID", http.StatusInternalServerError)
				return
			}
			id = generated
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(utils.WithRequestID(r.Context(), id)))
	})
}
