package adaptor

import (
	"net/http"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	account usecase.AccountService
	order   usecase.OrderService
	coupon  usecase.CouponService
	log     *zap.Logger
}

func NewAdminHandler(service *usecase.Service, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		account: service.Account,
		order:   service.Order,
		coupon:  service.Coupon,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// GetProfile handles GET /api/admin/me
func (h *AdminHandler) GetProfile() http.HandlerFunc {
	return profile(h.account, h.log, entity.RoleAdmin)
}

// GetAccounts handles GET /api/admin/{admins|members|sellers|guests}
func (h *AdminHandler) GetAccounts(role entity.RoleType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := request.PaginatedFromQuery(r.URL.Query())

		accounts, err := h.account.GetAccounts(r.Context(), role, req)
		if err != nil {
			handleServiceError(h.log, w, err, "get "+string(role)+" accounts")
			return
		}

		utils.ResponseSuccess(w, "success", accounts)
	}
}

// GetAccountByID handles GET /api/admin/{sellers|members}/{id}
func (h *AdminHandler) GetAccountByID(role entity.RoleType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := h.account.GetAccountByID(r.Context(), role, chi.URLParam(r, "id"))
		if err != nil {
			handleServiceError(h.log, w, err, "get account by ID")
			return
		}

		utils.ResponseSuccess(w, "success", account)
	}
}

// UpdateAccountStatus handles PATCH /api/admin/{sellers|members}/{id}/status
func (h *AdminHandler) UpdateAccountStatus(role entity.RoleType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request.UpdateAccountStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := h.account.UpdateAccountStatus(r.Context(), role, chi.URLParam(r, "id"), &req); err != nil {
			handleServiceError(h.log, w, err, "update account status")
			return
		}

		utils.ResponseNoContent(w)
	}
}

// DeleteAccount handles DELETE /api/admin/{sellers|members}/{id}
func (h *AdminHandler) DeleteAccount(role entity.RoleType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.account.DeleteAccount(r.Context(), role, chi.URLParam(r, "id")); err != nil {
			handleServiceError(h.log, w, err, "delete account")
			return
		}

		utils.ResponseNoContent(w)
	}
}

// GetDeposits handles GET /api/admin/deposits
func (h *AdminHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.order.GetDeposits(r.Context(), repository.OwnerFilter{}, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get deposits")
		return
	}

	utils.ResponseSuccess(w, "success", deposits)
}

// GetPayments handles GET /api/admin/payments
func (h *AdminHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.order.GetPayments(r.Context(), repository.OwnerFilter{}, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GetSales handles GET /api/admin/sales
func (h *AdminHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.order.GetSales(r.Context(), repository.OwnerFilter{}, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get sales")
		return
	}

	utils.ResponseSuccess(w, "success", sales)
}

// GetDeliveries handles GET /api/admin/deliveries
func (h *AdminHandler) GetDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.order.GetDeliveries(r.Context(), repository.OwnerFilter{}, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get deliveries")
		return
	}

	utils.ResponseSuccess(w, "success", deliveries)
}

// GetCoupons handles GET /api/admin/coupons
func (h *AdminHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupon.GetCoupons(r.Context(), request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get coupons")
		return
	}

	utils.ResponseSuccess(w, "success", coupons)
}

// CreateCoupon handles POST /api/admin/coupons
func (h *AdminHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCouponRequest
	if !decodeBody(w, r, &req) {
		return
	}

	coupon, err := h.coupon.CreateCoupon(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create coupon")
		return
	}

	utils.ResponseCreated(w, "success", coupon)
}

// DeleteCoupon handles DELETE /api/admin/coupons/{id}
func (h *AdminHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	if err := h.coupon.DeleteCoupon(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete coupon")
		return
	}

	utils.ResponseNoContent(w)
}
