package usecase

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCatalogService(t *testing.T) (*catalogService, *mockProductRepository) {
	t.Helper()
	products := &mockProductRepository{}
	t.Cleanup(func() { products.AssertExpectations(t) })

	svc := NewCatalogService(&repository.Repository{Product: products}, zap.NewNop()).(*catalogService)
	return svc, products
}

func TestGetCatalogue_ActiveOnly(t *testing.T) {
	svc, products := setupCatalogService(t)
	filter := repository.ProductFilter{ActiveOnly: true}
	products.On("FindAll", mock.Anything, filter, 10, 0).Return([]*entity.Product{}, nil).Once()
	products.On("CountAll", mock.Anything, filter).Return(int64(0), nil).Once()

	page, err := svc.GetCatalogue(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Pagination.TotalPages)
}

func TestGetSellerProductByID_NotOwned(t *testing.T) {
	svc, products := setupCatalogService(t)
	sellerID := uuid.New()
	productID := uuid.New()
	products.On("FindByID", mock.Anything, productID, repository.ProductFilter{SellerID: &sellerID}).
		Return(nil, nil).Once()

	_, err := svc.GetSellerProductByID(context.Background(), sellerID, productID.String())

	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteSellerProduct(t *testing.T) {
	svc, products := setupCatalogService(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	sellerID := uuid.New()
	productID := uuid.New()

	products.On("SoftDeleteBySeller", mock.Anything, productID, sellerID, now).
		Return(apperror.NotFound("Product not found")).Once()

	err := svc.DeleteSellerProduct(context.Background(), sellerID, productID.String())

	assert.True(t, apperror.IsNotFound(err))
}
