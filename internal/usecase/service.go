package usecase

import (
	"time"

	"marketplace-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Authorize AuthorizeService
	Account   AccountService
	Catalog   CatalogService
	Order     OrderService
	Coupon    CouponService
}

func NewService(repo *repository.Repository, decoder TokenDecoder, log *zap.Logger) *Service {
	return &Service{
		Authorize: NewAuthorizeService(decoder, repo, log),
		Account:   NewAccountService(repo, log),
		Catalog:   NewCatalogService(repo, log),
		Order:     NewOrderService(repo, log),
		Coupon:    NewCouponService(repo.Coupon, log),
	}
}

// clock is overridden in tests.
type clock func() time.Time
