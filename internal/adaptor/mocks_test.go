package adaptor

import (
	"context"
	"net/http"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/jwt"
	"marketplace-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// asPrincipal attaches what middleware.RequireRole would have stored.
func asPrincipal(r *http.Request, id uuid.UUID, role entity.RoleType) *http.Request {
	payload := &jwt.Payload{ID: id.String(), Type: string(role)}
	return r.WithContext(utils.SetPrincipalContext(r.Context(), payload))
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) GetSales(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.SalePage, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SalePage), args.Error(1)
}

func (m *mockOrderService) GetPayments(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.PaymentPage, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaymentPage), args.Error(1)
}

func (m *mockOrderService) GetDeposits(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.DepositPage, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.DepositPage), args.Error(1)
}

func (m *mockOrderService) GetDeliveries(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.DeliveryPage, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.DeliveryPage), args.Error(1)
}

func (m *mockOrderService) UpdateDeliveryStatus(ctx context.Context, sellerID uuid.UUID, deliveryID string, req *request.UpdateDeliveryStatusRequest) error {
	return m.Called(ctx, sellerID, deliveryID, req).Error(0)
}

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) GetSellerChannels(ctx context.Context, sellerID uuid.UUID, req *request.PaginatedRequest) (*response.ChannelPage, error) {
	args := m.Called(ctx, sellerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ChannelPage), args.Error(1)
}

func (m *mockCatalogService) GetSellerProducts(ctx context.Context, sellerID uuid.UUID, req *request.PaginatedRequest) (*response.ProductPage, error) {
	args := m.Called(ctx, sellerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ProductPage), args.Error(1)
}

func (m *mockCatalogService) GetSellerProductByID(ctx context.Context, sellerID uuid.UUID, productID string) (*response.ProductDetail, error) {
	args := m.Called(ctx, sellerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ProductDetail), args.Error(1)
}

func (m *mockCatalogService) DeleteSellerProduct(ctx context.Context, sellerID uuid.UUID, productID string) error {
	return m.Called(ctx, sellerID, productID).Error(0)
}

func (m *mockCatalogService) GetCatalogue(ctx context.Context, req *request.PaginatedRequest) (*response.ProductPage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ProductPage), args.Error(1)
}

func (m *mockCatalogService) GetCatalogueProduct(ctx context.Context, productID string) (*response.ProductDetail, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ProductDetail), args.Error(1)
}

type mockCouponService struct {
	mock.Mock
}

func (m *mockCouponService) GetCoupons(ctx context.Context, req *request.PaginatedRequest) (*response.CouponPage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CouponPage), args.Error(1)
}

func (m *mockCouponService) GetValidCoupons(ctx context.Context, req *request.PaginatedRequest) (*response.CouponPage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CouponPage), args.Error(1)
}

func (m *mockCouponService) CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CouponSummary), args.Error(1)
}

func (m *mockCouponService) DeleteCoupon(ctx context.Context, couponID string) error {
	return m.Called(ctx, couponID).Error(0)
}
