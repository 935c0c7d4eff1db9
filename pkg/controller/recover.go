package controller

import (
	"mailscout/pkg/logger"
	"net/http"

	"go.uber.org/zap"
)

// WithRecover returns a middleware that turns handler panics into 500
// responses instead of tearing down the connection.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context(), "panic while handling request",
					zap.Any("panic", rec),
					zap.String("url", r.URL.String()),
					zap.String("method", r.Method),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal server error"}`))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
