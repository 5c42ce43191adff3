package adaptor

import (
	"net/http"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

type MemberHandler struct {
	account usecase.AccountService
	order   usecase.OrderService
	coupon  usecase.CouponService
	log     *zap.Logger
}

func NewMemberHandler(service *usecase.Service, log *zap.Logger) *MemberHandler {
	return &MemberHandler{
		account: service.Account,
		order:   service.Order,
		coupon:  service.Coupon,
		log:     log.With(zap.String("handler", "member")),
	}
}

func (h *MemberHandler) GetProfile() http.HandlerFunc {
	return profile(h.account, h.log, entity.RoleMember)
}

// owner scopes a list to the authenticated member.
func (h *MemberHandler) owner(w http.ResponseWriter, r *http.Request) (repository.OwnerFilter, bool) {
	memberID, ok := principalID(h.log, w, r)
	if !ok {
		return repository.OwnerFilter{}, false
	}
	return repository.OwnerFilter{MemberID: &memberID}, true
}

// GetPayments handles GET /api/member/payments
func (h *MemberHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	payments, err := h.order.GetPayments(r.Context(), owner, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GetDeposits handles GET /api/member/deposits
func (h *MemberHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	deposits, err := h.order.GetDeposits(r.Context(), owner, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get deposits")
		return
	}

	utils.ResponseSuccess(w, "success", deposits)
}

// GetDeliveries handles GET /api/member/deliveries
func (h *MemberHandler) GetDeliveries(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	deliveries, err := h.order.GetDeliveries(r.Context(), owner, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get deliveries")
		return
	}

	utils.ResponseSuccess(w, "success", deliveries)
}

// GetSales handles GET /api/member/sales
func (h *MemberHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	sales, err := h.order.GetSales(r.Context(), owner, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get sales")
		return
	}

	utils.ResponseSuccess(w, "success", sales)
}

// GetCoupons handles GET /api/member/coupons
func (h *MemberHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupon.GetValidCoupons(r.Context(), request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get coupons")
		return
	}

	utils.ResponseSuccess(w, "success", coupons)
}
