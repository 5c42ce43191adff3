package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/apperror"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// setupSellerRouter mounts the seller routes behind a stand-in for RequireRole.
func setupSellerRouter(t *testing.T, sellerID uuid.UUID) (http.Handler, *mockCatalogService, *mockOrderService) {
	t.Helper()
	catalog := &mockCatalogService{}
	orders := &mockOrderService{}
	t.Cleanup(func() {
		catalog.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	h := NewSellerHandler(&usecase.Service{Catalog: catalog, Order: orders}, zap.NewNop())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, asPrincipal(r, sellerID, entity.RoleSeller))
		})
	})
	r.Get("/channels", h.GetChannels)
	r.Get("/products", h.GetProducts)
	r.Get("/products/{id}", h.GetProductByID)
	r.Delete("/products/{id}", h.DeleteProduct)
	r.Get("/sales", h.GetSales)
	r.Patch("/deliveries/{id}/status", h.UpdateDeliveryStatus)
	return r, catalog, orders
}

func TestSellerHandler_ListsScopedToPrincipal(t *testing.T) {
	sellerID := uuid.New()
	page := &request.PaginatedRequest{Page: 1, PerPage: 10}
	router, catalog, orders := setupSellerRouter(t, sellerID)

	catalog.On("GetSellerChannels", mock.Anything, sellerID, page).
		Return(response.NewPaginatedResponse([]response.ChannelSummary{}, 1, 10, 0), nil).Once()
	catalog.On("GetSellerProducts", mock.Anything, sellerID, page).
		Return(response.NewPaginatedResponse([]response.ProductSummary{}, 1, 10, 0), nil).Once()
	orders.On("GetSales", mock.Anything, repository.OwnerFilter{SellerID: &sellerID}, page).
		Return(response.NewPaginatedResponse([]response.SaleSummary{}, 1, 10, 0), nil).Once()

	for _, path := range []string{"/channels", "/products", "/sales"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSellerHandler_ProductOfAnotherSeller(t *testing.T) {
	sellerID := uuid.New()
	productID := uuid.NewString()
	router, catalog, _ := setupSellerRouter(t, sellerID)

	catalog.On("GetSellerProductByID", mock.Anything, sellerID, productID).
		Return(nil, apperror.NotFound("Product not found")).Once()
	catalog.On("DeleteSellerProduct", mock.Anything, sellerID, productID).
		Return(apperror.NotFound("Product not found")).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/"+productID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/"+productID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSellerHandler_UpdateDeliveryStatus(t *testing.T) {
	sellerID := uuid.New()
	deliveryID := uuid.NewString()
	router, _, orders := setupSellerRouter(t, sellerID)

	orders.On("UpdateDeliveryStatus", mock.Anything, sellerID, deliveryID, &request.UpdateDeliveryStatusRequest{Status: "shipped"}).
		Return(nil).Once()

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"status":"shipped"}`)
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/deliveries/"+deliveryID+"/status", body))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
