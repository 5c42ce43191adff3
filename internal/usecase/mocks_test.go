package usecase

import (
	"context"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockDecoder struct {
	mock.Mock
}

func (m *mockDecoder) Decode(token string) (*jwt.Payload, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Payload), args.Error(1)
}

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindAuthorized(ctx context.Context, id uuid.UUID, requireActive bool) (*entity.Account, error) {
	args := m.Called(ctx, id, requireActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *mockAccountRepository) FindUniqueOrThrow(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *mockAccountRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Account), args.Error(1)
}

func (m *mockAccountRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAccountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus, at time.Time) error {
	return m.Called(ctx, id, status, at).Error(0)
}

func (m *mockAccountRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

// accountTables routes every role to its own mock.
type accountTables map[entity.RoleType]*mockAccountRepository

func newAccountTables() accountTables {
	tables := accountTables{}
	for _, role := range entity.Roles() {
		tables[role] = &mockAccountRepository{}
	}
	return tables
}

func (t accountTables) Accounts(role entity.RoleType) repository.AccountRepository {
	return t[role]
}

func (t accountTables) assertExpectations(tt mock.TestingT) {
	for _, repo := range t {
		repo.AssertExpectations(tt)
	}
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindAll(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *mockProductRepository) CountAll(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID, filter repository.ProductFilter) (*entity.Product, error) {
	args := m.Called(ctx, id, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockProductRepository) SoftDeleteBySeller(ctx context.Context, id, sellerID uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, sellerID, at).Error(0)
}

type mockCouponRepository struct {
	mock.Mock
}

func (m *mockCouponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *mockCouponRepository) FindAll(ctx context.Context, validAt *time.Time, limit, offset int) ([]*entity.Coupon, error) {
	args := m.Called(ctx, validAt, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Coupon), args.Error(1)
}

func (m *mockCouponRepository) CountAll(ctx context.Context, validAt *time.Time) (int64, error) {
	args := m.Called(ctx, validAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCouponRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}
