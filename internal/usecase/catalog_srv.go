package usecase

import (
	"context"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	GetSellerChannels(ctx context.Context, sellerID uuid.UUID, req *request.PaginatedRequest) (*response.ChannelPage, error)
	GetSellerProducts(ctx context.Context, sellerID uuid.UUID, req *request.PaginatedRequest) (*response.ProductPage, error)
	GetSellerProductByID(ctx context.Context, sellerID uuid.UUID, productID string) (*response.ProductDetail, error)
	DeleteSellerProduct(ctx context.Context, sellerID uuid.UUID, productID string) error

	// GetCatalogue lists active products of every seller.
	GetCatalogue(ctx context.Context, req *request.PaginatedRequest) (*response.ProductPage, error)
	GetCatalogueProduct(ctx context.Context, productID string) (*response.ProductDetail, error)
}

type catalogService struct {
	channels repository.ChannelRepository
	products repository.ProductRepository
	now      clock
	log      *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		channels: repo.Channel,
		products: repo.Product,
		now:      time.Now,
		log:      log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetSellerChannels(ctx context.Context, sellerID uuid.UUID, req *request.PaginatedRequest) (*response.ChannelPage, error) {
	return listPage(ctx, s.log, "channels", req,
		func(ctx context.Context, limit, offset int) ([]*entity.Channel, error) {
			return s.channels.FindAllBySeller(ctx, sellerID, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.channels.CountBySeller(ctx, sellerID)
		},
		response.ChannelToSummary,
	)
}

func (s *catalogService) GetSellerProducts(ctx context.Context, sellerID uuid.UUID, req *request.PaginatedRequest) (*response.ProductPage, error) {
	return s.listProducts(ctx, repository.ProductFilter{SellerID: &sellerID}, req)
}

func (s *catalogService) GetCatalogue(ctx context.Context, req *request.PaginatedRequest) (*response.ProductPage, error) {
	return s.listProducts(ctx, repository.ProductFilter{ActiveOnly: true}, req)
}

func (s *catalogService) listProducts(ctx context.Context, filter repository.ProductFilter, req *request.PaginatedRequest) (*response.ProductPage, error) {
	return listPage(ctx, s.log, "products", req,
		func(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
			return s.products.FindAll(ctx, filter, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.products.CountAll(ctx, filter)
		},
		response.ProductToSummary,
	)
}

func (s *catalogService) GetSellerProductByID(ctx context.Context, sellerID uuid.UUID, productID string) (*response.ProductDetail, error) {
	return s.getProduct(ctx, productID, repository.ProductFilter{SellerID: &sellerID})
}

func (s *catalogService) GetCatalogueProduct(ctx context.Context, productID string) (*response.ProductDetail, error) {
	return s.getProduct(ctx, productID, repository.ProductFilter{ActiveOnly: true})
}

func (s *catalogService) getProduct(ctx context.Context, productID string, filter repository.ProductFilter) (*response.ProductDetail, error) {
	id, err := parseID(productID, "product")
	if err != nil {
		s.log.Warn("Invalid product ID format", zap.String("product_id", productID))
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id, filter)
	if err != nil {
		return nil, apperror.Internal("failed to get product", err)
	}
	if product == nil {
		return nil, apperror.NotFound("Product not found")
	}

	detail := response.ProductToDetail(product)
	return &detail, nil
}

func (s *catalogService) DeleteSellerProduct(ctx context.Context, sellerID uuid.UUID, productID string) error {
	id, err := parseID(productID, "product")
	if err != nil {
		return err
	}

	if err := s.products.SoftDeleteBySeller(ctx, id, sellerID, s.now()); err != nil {
		return internalUnlessApp(err, "failed to delete product")
	}

	s.log.Info("Product soft deleted",
		zap.String("product_id", productID),
		zap.String("seller_id", sellerID.String()),
	)

	return nil
}
