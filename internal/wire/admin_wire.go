package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, h *adaptor.AdminHandler, authorizer middleware.Authorizer, log *zap.Logger) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireRole(authorizer, entity.RoleAdmin, log))

		r.Get("/me", h.GetProfile())

		// account tables
		r.Get("/admins", h.GetAccounts(entity.RoleAdmin))
		r.Get("/guests", h.GetAccounts(entity.RoleGuest))
		for path, role := range map[string]entity.RoleType{
			"/sellers": entity.RoleSeller,
			"/members": entity.RoleMember,
		} {
			r.Route(path, func(r chi.Router) {
				r.Get("/", h.GetAccounts(role))
				r.Get("/{id}", h.GetAccountByID(role))
				r.Delete("/{id}", h.DeleteAccount(role))
				r.Patch("/{id}/status", h.UpdateAccountStatus(role))
			})
		}

		r.Get("/deposits", h.GetDeposits)
		r.Get("/payments", h.GetPayments)
		r.Get("/sales", h.GetSales)
		r.Get("/deliveries", h.GetDeliveries)

		r.Route("/coupons", func(r chi.Router) {
			r.Get("/", h.GetCoupons)
			r.Post("/", h.CreateCoupon)
			r.Delete("/{id}", h.DeleteCoupon)
		})
	})
}
