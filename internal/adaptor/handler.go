package adaptor

import (
	"encoding/json"
	"net/http"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Admin  *AdminHandler
	Seller *SellerHandler
	Member *MemberHandler
	Guest  *GuestHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Admin:  NewAdminHandler(service, log),
		Seller: NewSellerHandler(service, log),
		Member: NewMemberHandler(service, log),
		Guest:  NewGuestHandler(service, log),
	}
}

// handleServiceError logs by kind (4xx at warn, 5xx at error) and writes the
// matching envelope through utils.ResponseError.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))

	case apperror.KindInvalid:
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))

	case apperror.KindConflict:
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))

	case apperror.KindPermission:
		log.Warn(operation+" forbidden",
			zap.Error(err),
			zap.String("operation", operation))

	case apperror.KindInternal:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
	}

	utils.ResponseError(w, err)
}

// principalID reads the subject set by middleware.RequireRole. A miss means
// the route was mounted without the middleware.
func principalID(log *zap.Logger, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := utils.GetPrincipalIDFromContext(r.Context())
	if !ok {
		log.Error("Principal missing from context", zap.String("path", r.URL.Path))
		utils.ResponseError(w, apperror.Authentication("Authentication required", nil))
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes and validates a JSON body, writing the 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// profile serves GET /me for any role.
func profile(service usecase.AccountService, log *zap.Logger, role entity.RoleType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := principalID(log, w, r)
		if !ok {
			return
		}

		account, err := service.GetProfile(r.Context(), role, id)
		if err != nil {
			handleServiceError(log, w, err, "get profile")
			return
		}

		utils.ResponseSuccess(w, "success", account)
	}
}
