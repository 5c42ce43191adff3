package utils

import (
	"context"

	"marketplace-api/pkg/jwt"

	"github.com/google/uuid"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
)

// SetPrincipalContext stores the payload returned by the role authorizer.
func SetPrincipalContext(ctx context.Context, payload *jwt.Payload) context.Context {
	return context.WithValue(ctx, PrincipalKey, payload)
}

func GetPrincipalFromContext(ctx context.Context) (*jwt.Payload, bool) {
	payload, ok := ctx.Value(PrincipalKey).(*jwt.Payload)
	return payload, ok && payload != nil
}

// GetPrincipalIDFromContext returns the authenticated subject id as a UUID.
func GetPrincipalIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	payload, ok := GetPrincipalFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(payload.ID)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
