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

// SellerHandler serves /api/seller. Every query is scoped to the authenticated seller.
type SellerHandler struct {
	account usecase.AccountService
	catalog usecase.CatalogService
	order   usecase.OrderService
	log     *zap.Logger
}

func NewSellerHandler(service *usecase.Service, log *zap.Logger) *SellerHandler {
	return &SellerHandler{
		account: service.Account,
		catalog: service.Catalog,
		order:   service.Order,
		log:     log.With(zap.String("handler", "seller")),
	}
}

func (h *SellerHandler) GetProfile() http.HandlerFunc {
	return profile(h.account, h.log, entity.RoleSeller)
}

// GetChannels handles GET /api/seller/channels
func (h *SellerHandler) GetChannels(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := principalID(h.log, w, r)
	if !ok {
		return
	}

	channels, err := h.catalog.GetSellerChannels(r.Context(), sellerID, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get channels")
		return
	}

	utils.ResponseSuccess(w, "success", channels)
}

// GetProducts handles GET /api/seller/products
func (h *SellerHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := principalID(h.log, w, r)
	if !ok {
		return
	}

	products, err := h.catalog.GetSellerProducts(r.Context(), sellerID, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetProductByID handles GET /api/seller/products/{id}
func (h *SellerHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := principalID(h.log, w, r)
	if !ok {
		return
	}

	product, err := h.catalog.GetSellerProductByID(r.Context(), sellerID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get product by ID")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// DeleteProduct handles DELETE /api/seller/products/{id}
func (h *SellerHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := principalID(h.log, w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteSellerProduct(r.Context(), sellerID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete product")
		return
	}

	utils.ResponseNoContent(w)
}

// GetSales handles GET /api/seller/sales
func (h *SellerHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := principalID(h.log, w, r)
	if !ok {
		return
	}

	owner := repository.OwnerFilter{SellerID: &sellerID}
	sales, err := h.order.GetSales(r.Context(), owner, request.PaginatedFromQuery(r.URL.Query()))
	if err != nil {
		handleServiceError(h.log, w, err, "get sales")
		return
	}

	utils.ResponseSuccess(w, "success", sales)
}

// UpdateDeliveryStatus handles PATCH /api/seller/deliveries/{id}/status
func (h *SellerHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := principalID(h.log, w, r)
	if !ok {
		return
	}

	var req request.UpdateDeliveryStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.order.UpdateDeliveryStatus(r.Context(), sellerID, chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(h.log, w, err, "update delivery status")
		return
	}

	utils.ResponseNoContent(w)
}
