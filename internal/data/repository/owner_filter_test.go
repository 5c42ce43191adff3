package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestChannelRepository_ScopedToSeller(t *testing.T) {
	mock := newMockPool(t)
	repo := NewChannelRepository(mock, zap.NewNop())

	seller := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`FROM channels\s+WHERE seller_id = \$1 AND deleted_at IS NULL\s+ORDER BY name\s+LIMIT \$2 OFFSET \$3`).
		WithArgs(seller, 10, 20).
		WillReturnRows(pgxmock.NewRows([]string{"id", "seller_id", "name", "platform", "created_at", "updated_at", "deleted_at"}).
			AddRow(uuid.New(), seller, "Main shop", "web", now, now, nil))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM channels WHERE seller_id = $1 AND deleted_at IS NULL`)).
		WithArgs(seller).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(21)))

	channels, err := repo.FindAllBySeller(context.Background(), seller, 10, 20)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, seller, channels[0].SellerID)
	assert.False(t, channels[0].Lifecycle.IsDeleted())

	total, err := repo.CountBySeller(context.Background(), seller)
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_ScopedToMember(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock, zap.NewNop())

	member, seller := uuid.New(), uuid.New()
	// payments have no seller column, so a seller id is dropped
	filter := OwnerFilter{SellerID: &seller, MemberID: &member}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM payments WHERE member_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs(member, 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "sale_id", "member_id", "amount", "method", "status", "paid_at", "created_at"}))
	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM payments WHERE member_id = \$1$`).
		WithArgs(member).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	payments, err := repo.FindAll(context.Background(), filter, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, payments)

	_, err = repo.CountAll(context.Background(), filter)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, &seller, filter.SellerID)
}

func TestDepositRepository_ScopedToMember(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDepositRepository(mock, zap.NewNop())

	member := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM deposits WHERE member_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs(member, 10, 10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "member_id", "amount", "status", "created_at"}).
			AddRow(uuid.New(), member, 50.0, entity.DepositStatusConfirmed, now))
	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM deposits WHERE member_id = \$1$`).
		WithArgs(member).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(11)))

	deposits, err := repo.FindAll(context.Background(), OwnerFilter{MemberID: &member}, 10, 10)
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	assert.Equal(t, member, deposits[0].MemberID)

	total, err := repo.CountAll(context.Background(), OwnerFilter{MemberID: &member})
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepositRepository_Unscoped(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDepositRepository(mock, zap.NewNop())

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM deposits$`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.CountAll(context.Background(), OwnerFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepository_DropsSellerFilter(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDeliveryRepository(mock, zap.NewNop())

	member, seller := uuid.New(), uuid.New()
	filter := OwnerFilter{SellerID: &seller, MemberID: &member}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM deliveries WHERE member_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs(member, 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "sale_id", "member_id", "courier", "tracking_number", "status", "shipped_at", "delivered_at", "updated_at",
		}))
	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM deliveries WHERE member_id = \$1$`).
		WithArgs(member).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	_, err := repo.FindAll(context.Background(), filter, 10, 0)
	require.NoError(t, err)
	_, err = repo.CountAll(context.Background(), filter)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_ScopedToSeller(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSaleRepository(mock, zap.NewNop())

	seller := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM sales WHERE seller_id = $1 ORDER BY sold_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs(seller, 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "seller_id", "member_id", "quantity", "total_price", "sold_at"}))

	sales, err := repo.FindAll(context.Background(), OwnerFilter{SellerID: &seller}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, sales)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_Create_DuplicateCode(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCouponRepository(mock, zap.NewNop())

	coupon := &entity.Coupon{Code: "WELCOME10"}
	coupon.ID = uuid.New()

	mock.ExpectExec(`INSERT INTO coupons`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "coupons_code_key"})

	err := repo.Create(context.Background(), coupon)

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, "Coupon code WELCOME10 already exists", apperror.MessageOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_Create_OtherErrorStaysInternal(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCouponRepository(mock, zap.NewNop())

	mock.ExpectExec(`INSERT INTO coupons`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23514"})

	err := repo.Create(context.Background(), &entity.Coupon{Code: "BAD"})

	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
