package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGuest(r chi.Router, h *adaptor.GuestHandler, authorizer middleware.Authorizer, log *zap.Logger) {
	r.Route("/api/guest", func(r chi.Router) {
		r.Use(middleware.RequireRole(authorizer, entity.RoleGuest, log))

		r.Get("/me", h.GetProfile())
		r.Get("/products", h.GetProducts)
		r.Get("/products/{id}", h.GetProductByID)
	})
}
