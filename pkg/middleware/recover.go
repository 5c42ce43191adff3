package middleware

import (
	"net/http"

	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panic into a 500 envelope and logs the stack.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					utils.ResponseError(w, apperror.Internal("panic", nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
