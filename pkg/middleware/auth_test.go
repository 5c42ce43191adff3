package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/jwt"
	"marketplace-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthorizer struct {
	payload *jwt.Payload
	err     error

	gotHeader string
	gotRole   entity.RoleType
}

func (s *stubAuthorizer) Authorize(_ context.Context, authorization string, role entity.RoleType) (*jwt.Payload, error) {
	s.gotHeader = authorization
	s.gotRole = role
	return s.payload, s.err
}

func serve(t *testing.T, authorizer Authorizer, next http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/seller/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	RequireRole(authorizer, entity.RoleSeller, zap.NewNop())(next).ServeHTTP(rec, req)
	return rec
}

func TestRequireRole_StoresPrincipal(t *testing.T) {
	payload := &jwt.Payload{ID: "2f6b7c9e-8d7a-4a8e-9c57-0d2a7f1e3b44", Type: string(entity.RoleSeller)}
	authorizer := &stubAuthorizer{payload: payload}

	var seen *jwt.Payload
	rec := serve(t, authorizer, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetPrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Same(t, payload, seen)
	assert.Equal(t, "Bearer token", authorizer.gotHeader)
	assert.Equal(t, entity.RoleSeller, authorizer.gotRole)
}

func TestRequireRole_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"authentication", apperror.Authentication("Invalid token", jwt.ErrInvalidToken), http.StatusUnauthorized, "Invalid token"},
		{"permission", apperror.Permission("You're not memberuser"), http.StatusForbidden, "You're not memberuser"},
		{"internal", apperror.Internal("failed to authorize", assert.AnError), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			rec := serve(t, &stubAuthorizer{err: tt.err}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))

			assert.False(t, called)
			assert.Equal(t, tt.wantCode, rec.Code)

			var body utils.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestRecover(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)

	Recover(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
