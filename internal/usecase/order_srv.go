package usecase

import (
	"context"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService lists the transactional records. An empty OwnerFilter lists
// everything and is only reachable from admin routes.
type OrderService interface {
	GetSales(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.SalePage, error)
	GetPayments(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.PaymentPage, error)
	GetDeposits(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.DepositPage, error)
	GetDeliveries(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.DeliveryPage, error)
	UpdateDeliveryStatus(ctx context.Context, sellerID uuid.UUID, deliveryID string, req *request.UpdateDeliveryStatusRequest) error
}

type orderService struct {
	sales      repository.SaleRepository
	payments   repository.PaymentRepository
	deposits   repository.DepositRepository
	deliveries repository.DeliveryRepository
	now        clock
	log        *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		sales:      repo.Sale,
		payments:   repo.Payment,
		deposits:   repo.Deposit,
		deliveries: repo.Delivery,
		now:        time.Now,
		log:        log.With(zap.String("service", "order")),
	}
}

func (s *orderService) GetSales(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.SalePage, error) {
	return listPage(ctx, s.log, "sales", req,
		func(ctx context.Context, limit, offset int) ([]*entity.Sale, error) {
			return s.sales.FindAll(ctx, owner, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.sales.CountAll(ctx, owner)
		},
		response.SaleToSummary,
	)
}

func (s *orderService) GetPayments(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.PaymentPage, error) {
	return listPage(ctx, s.log, "payments", req,
		func(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
			return s.payments.FindAll(ctx, owner, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.payments.CountAll(ctx, owner)
		},
		response.PaymentToSummary,
	)
}

func (s *orderService) GetDeposits(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.DepositPage, error) {
	return listPage(ctx, s.log, "deposits", req,
		func(ctx context.Context, limit, offset int) ([]*entity.Deposit, error) {
			return s.deposits.FindAll(ctx, owner, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.deposits.CountAll(ctx, owner)
		},
		response.DepositToSummary,
	)
}

func (s *orderService) GetDeliveries(ctx context.Context, owner repository.OwnerFilter, req *request.PaginatedRequest) (*response.DeliveryPage, error) {
	return listPage(ctx, s.log, "deliveries", req,
		func(ctx context.Context, limit, offset int) ([]*entity.Delivery, error) {
			return s.deliveries.FindAll(ctx, owner, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.deliveries.CountAll(ctx, owner)
		},
		response.DeliveryToSummary,
	)
}

func (s *orderService) UpdateDeliveryStatus(ctx context.Context, sellerID uuid.UUID, deliveryID string, req *request.UpdateDeliveryStatusRequest) error {
	id, err := parseID(deliveryID, "delivery")
	if err != nil {
		return err
	}

	status := entity.DeliveryStatus(req.Status)
	if err := s.deliveries.UpdateStatusBySeller(ctx, id, sellerID, status, req.TrackingNumber, s.now()); err != nil {
		return internalUnlessApp(err, "failed to update delivery")
	}

	s.log.Info("Delivery status updated",
		zap.String("delivery_id", deliveryID),
		zap.String("seller_id", sellerID.String()),
		zap.String("status", req.Status),
	)

	return nil
}
