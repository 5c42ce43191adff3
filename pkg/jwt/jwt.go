package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("token is missing")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Payload is the decoded bearer token. ID is the subject row id, Type the role tag.
type Payload struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Manager verifies (and, for tooling, signs) HS256 tokens with a shared secret.
type Manager struct {
	secret   []byte
	leeway   time.Duration
	lifetime time.Duration
	timeFunc func() time.Time
}

func NewManager(secret string, leeway, lifetime time.Duration) (*Manager, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}

	return &Manager{
		secret:   []byte(secret),
		leeway:   leeway,
		lifetime: lifetime,
		timeFunc: time.Now,
	}, nil
}

// Sign issues a token for subject id with role tag typ.
func (m *Manager) Sign(id, typ string) (string, error) {
	now := m.timeFunc()
	payload := &Payload{
		ID:   id,
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Decode verifies signature and expiry and returns the payload.
func (m *Manager) Decode(tokenString string) (*Payload, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Payload{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(m.leeway),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.timeFunc),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	payload, ok := token.Claims.(*Payload)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if payload.ID == "" || payload.Type == "" {
		return nil, fmt.Errorf("%w: missing id or type", ErrInvalidToken)
	}

	return payload, nil
}
