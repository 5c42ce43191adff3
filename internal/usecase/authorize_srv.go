package usecase

import (
	"context"
	"errors"
	"strings"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgNotEnrolled         = "You're not enrolled"
	msgNotEnrolledInactive = "You're not enrolled or inactive"
)

type TokenDecoder interface {
	Decode(token string) (*jwt.Payload, error)
}

// AccountLookup resolves the account table for a role. *repository.Repository implements it.
type AccountLookup interface {
	Accounts(role entity.RoleType) repository.AccountRepository
}

type rolePolicy struct {
	requireActive bool
	notEnrolled   string
}

var rolePolicies = map[entity.RoleType]rolePolicy{
	entity.RoleAdmin:  {requireActive: true, notEnrolled: msgNotEnrolledInactive},
	entity.RoleMember: {requireActive: true, notEnrolled: msgNotEnrolledInactive},
	entity.RoleSeller: {requireActive: true, notEnrolled: msgNotEnrolledInactive},
	entity.RoleGuest:  {requireActive: false, notEnrolled: msgNotEnrolled},
}

type AuthorizeService interface {
	// Authorize decodes the bearer token in authorization, checks its role tag
	// against role and confirms the subject is still enrolled. The decoded
	// payload is returned as-is.
	Authorize(ctx context.Context, authorization string, role entity.RoleType) (*jwt.Payload, error)
}

type authorizeService struct {
	decoder  TokenDecoder
	accounts AccountLookup
	log      *zap.Logger
}

func NewAuthorizeService(decoder TokenDecoder, accounts AccountLookup, log *zap.Logger) AuthorizeService {
	return &authorizeService{
		decoder:  decoder,
		accounts: accounts,
		log:      log.With(zap.String("service", "authorize")),
	}
}

func (s *authorizeService) Authorize(ctx context.Context, authorization string, role entity.RoleType) (*jwt.Payload, error) {
	policy, ok := rolePolicies[role]
	if !ok {
		return nil, apperror.Internal("unknown role", errors.New(string(role)))
	}

	// 1. Decode
	token, ok := BearerToken(authorization)
	if !ok {
		return nil, apperror.Authentication("Missing or malformed authorization token", jwt.ErrMissingToken)
	}

	payload, err := s.decoder.Decode(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, apperror.Authentication("Token expired", err)
		}
		return nil, apperror.Authentication("Invalid token", err)
	}

	// 2. Role tag
	if payload.Type != string(role) {
		s.log.Warn("Role mismatch",
			zap.String("expected", string(role)),
			zap.String("actual", payload.Type),
			zap.String("subject_id", payload.ID),
		)
		return nil, apperror.Permission("You're not " + payload.Type)
	}

	// 3. Subject still enrolled
	id, err := uuid.Parse(payload.ID)
	if err != nil {
		s.log.Warn("Token subject is not a UUID", zap.String("subject_id", payload.ID))
		return nil, apperror.Permission(policy.notEnrolled)
	}

	account, err := s.accounts.Accounts(role).FindAuthorized(ctx, id, policy.requireActive)
	if err != nil {
		return nil, apperror.Internal("failed to authorize", err)
	}
	if account == nil {
		s.log.Warn("Subject not enrolled",
			zap.String("role", string(role)),
			zap.String("subject_id", payload.ID),
			zap.Bool("require_active", policy.requireActive),
		)
		return nil, apperror.Permission(policy.notEnrolled)
	}

	return payload, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
