package utils

import (
	"context"
	"net/http"
)

type requestIDKey struct{}

// WithRequestID stores the request ID on the context for downstream handlers
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func GetRequestID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
