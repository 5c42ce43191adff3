package middleware

import (
	"context"
	"net/http"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/jwt"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

// Authorizer is satisfied by usecase.AuthorizeService.
type Authorizer interface {
	Authorize(ctx context.Context, authorization string, role entity.RoleType) (*jwt.Payload, error)
}

// RequireRole admits requests whose bearer token belongs to an enrolled subject of role.
// The decoded payload is stored in the request context for handlers.
func RequireRole(authorizer Authorizer, role entity.RoleType, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, err := authorizer.Authorize(r.Context(), r.Header.Get("Authorization"), role)
			if err != nil {
				switch apperror.KindOf(err) {
				case apperror.KindPermission:
					logger.Warn("Access denied",
						zap.String("role", string(role)),
						zap.String("path", r.URL.Path),
						zap.String("reason", apperror.MessageOf(err)),
					)
				case apperror.KindInternal:
					logger.Error("Failed to authorize request",
						zap.Error(err),
						zap.String("role", string(role)),
						zap.String("path", r.URL.Path),
					)
				}
				utils.ResponseError(w, err)
				return
			}

			ctx := utils.SetPrincipalContext(r.Context(), payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
