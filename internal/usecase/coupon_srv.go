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

type CouponService interface {
	GetCoupons(ctx context.Context, req *request.PaginatedRequest) (*response.CouponPage, error)
	// GetValidCoupons lists coupons whose validity window contains the current time.
	GetValidCoupons(ctx context.Context, req *request.PaginatedRequest) (*response.CouponPage, error)
	CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponSummary, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}

type couponService struct {
	coupons repository.CouponRepository
	now     clock
	log     *zap.Logger
}

func NewCouponService(coupons repository.CouponRepository, log *zap.Logger) CouponService {
	return &couponService{
		coupons: coupons,
		now:     time.Now,
		log:     log.With(zap.String("service", "coupon")),
	}
}

func (s *couponService) GetCoupons(ctx context.Context, req *request.PaginatedRequest) (*response.CouponPage, error) {
	return s.list(ctx, nil, req)
}

func (s *couponService) GetValidCoupons(ctx context.Context, req *request.PaginatedRequest) (*response.CouponPage, error) {
	now := s.now()
	return s.list(ctx, &now, req)
}

func (s *couponService) list(ctx context.Context, validAt *time.Time, req *request.PaginatedRequest) (*response.CouponPage, error) {
	return listPage(ctx, s.log, "coupons", req,
		func(ctx context.Context, limit, offset int) ([]*entity.Coupon, error) {
			return s.coupons.FindAll(ctx, validAt, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return s.coupons.CountAll(ctx, validAt)
		},
		response.CouponToSummary,
	)
}

func (s *couponService) CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponSummary, error) {
	coupon := &entity.Coupon{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		Lifecycle:    entity.Active(),
		Code:         req.Code,
		DiscountRate: req.DiscountRate,
		MaxDiscount:  req.MaxDiscount,
		ValidFrom:    req.ValidFrom,
		ValidUntil:   req.ValidUntil,
	}

	if err := s.coupons.Create(ctx, coupon); err != nil {
		return nil, internalUnlessApp(err, "failed to create coupon")
	}

	s.log.Info("Coupon created",
		zap.String("coupon_id", coupon.ID.String()),
		zap.String("code", coupon.Code),
	)

	summary := response.CouponToSummary(coupon)
	return &summary, nil
}

func (s *couponService) DeleteCoupon(ctx context.Context, couponID string) error {
	id, err := parseID(couponID, "coupon")
	if err != nil {
		return err
	}

	if err := s.coupons.SoftDelete(ctx, id, s.now()); err != nil {
		return internalUnlessApp(err, "failed to delete coupon")
	}

	s.log.Info("Coupon soft deleted", zap.String("coupon_id", couponID))
	return nil
}
