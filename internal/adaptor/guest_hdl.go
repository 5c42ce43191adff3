package adaptor

import (
	"net/http"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GuestHandler struct {
	account usecase.AccountService
	catalog usecase.CatalogService
	log     *zap.Logger
}

func NewGuestHandler(service *usecase.Service, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		account: service.Account,
		catalog: service.Catalog,
		log:     log.With(zap.String("handler", "guest")),
	}
}

func (h *GuestHandler) GetProfile() http.HandlerFunc {
	return profile(h.account, h.log, entity.RoleGuest)
}

// GetProducts handles GET /api/guest/products
func (h *GuestHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.GetCatalogue(r.Context(), request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetProductByID handles GET /api/guest/products/{id}
func (h *GuestHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetCatalogueProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get product by ID")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}
