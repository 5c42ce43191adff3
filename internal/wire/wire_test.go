package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/jwt"
	"marketplace-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// rejectAll fails every request the way the authorizer does for the given error.
type rejectAll struct {
	err   error
	roles []entity.RoleType
}

func (a *rejectAll) Authorize(_ context.Context, _ string, role entity.RoleType) (*jwt.Payload, error) {
	a.roles = append(a.roles, role)
	return nil, a.err
}

func newTestRouter(authorizer *rejectAll) http.Handler {
	handler := adaptor.NewHandler(&usecase.Service{}, zap.NewNop())
	config := &utils.Config{CORS: utils.CORSConfig{AllowedOrigins: []string{"*"}}}
	return setupRouter(handler, authorizer, config, zap.NewNop())
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&rejectAll{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRoutesRequireTheirRole(t *testing.T) {
	tests := []struct {
		method string
		path   string
		role   entity.RoleType
	}{
		{http.MethodGet, "/api/admin/sellers", entity.RoleAdmin},
		{http.MethodDelete, "/api/admin/members/3b0f7d4e-6c1a-4d7e-9a55-2f8f2b6f1c11", entity.RoleAdmin},
		{http.MethodGet, "/api/seller/products", entity.RoleSeller},
		{http.MethodGet, "/api/member/coupons", entity.RoleMember},
		{http.MethodGet, "/api/guest/products", entity.RoleGuest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			authorizer := &rejectAll{err: apperror.Permission("You're not guestuser")}
			router := newTestRouter(authorizer)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, []entity.RoleType{tt.role}, authorizer.roles)
		})
	}
}
