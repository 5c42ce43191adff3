package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMember(r chi.Router, h *adaptor.MemberHandler, authorizer middleware.Authorizer, log *zap.Logger) {
	r.Route("/api/member", func(r chi.Router) {
		r.Use(middleware.RequireRole(authorizer, entity.RoleMember, log))

		r.Get("/me", h.GetProfile())
		r.Get("/payments", h.GetPayments)
		r.Get("/deposits", h.GetDeposits)
		r.Get("/deliveries", h.GetDeliveries)
		r.Get("/sales", h.GetSales)
		r.Get("/coupons", h.GetCoupons) // currently valid only
	})
}
