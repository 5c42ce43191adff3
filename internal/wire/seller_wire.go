package wire

import (
	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSeller(r chi.Router, h *adaptor.SellerHandler, authorizer middleware.Authorizer, log *zap.Logger) {
	r.Route("/api/seller", func(r chi.Router) {
		r.Use(middleware.RequireRole(authorizer, entity.RoleSeller, log))

		r.Get("/me", h.GetProfile())
		r.Get("/channels", h.GetChannels)

		r.Get("/products", h.GetProducts)           // own products only
		r.Get("/products/{id}", h.GetProductByID)   // 404 for another seller's product
		r.Delete("/products/{id}", h.DeleteProduct) // soft delete

		r.Get("/sales", h.GetSales)
		r.Patch("/deliveries/{id}/status", h.UpdateDeliveryStatus)
	})
}
