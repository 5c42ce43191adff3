package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	// FindAll lists non-deleted coupons; validAt, when set, keeps only coupons valid at that instant.
	FindAll(ctx context.Context, validAt *time.Time, limit, offset int) ([]*entity.Coupon, error)
	CountAll(ctx context.Context, validAt *time.Time) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

type couponRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCouponRepository(db database.PgxIface, log *zap.Logger) CouponRepository {
	return &couponRepository{
		db:  db,
		log: log.With(zap.String("repository", "coupon")),
	}
}

func couponConditions(validAt *time.Time) *conditions {
	c := &conditions{}
	c.raw(notDeleted)
	if validAt != nil {
		c.add("valid_from <= $%d", *validAt)
		c.add("valid_until > $%d", *validAt)
	}
	return c
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	query := `
		INSERT INTO coupons (id, code, discount_rate, max_discount, valid_from, valid_until, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		coupon.ID,
		coupon.Code,
		coupon.DiscountRate,
		coupon.MaxDiscount,
		coupon.ValidFrom,
		coupon.ValidUntil,
		coupon.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		r.log.Warn("Coupon code already exists", zap.String("code", coupon.Code))
		return apperror.Conflict(fmt.Sprintf("Coupon code %s already exists", coupon.Code), err)
	}
	if err != nil {
		r.log.Error("Failed to create coupon",
			zap.Error(err),
			zap.String("code", coupon.Code),
		)
		return fmt.Errorf("create coupon %s: %w", coupon.Code, err)
	}

	return nil
}

func (r *couponRepository) FindAll(ctx context.Context, validAt *time.Time, limit, offset int) ([]*entity.Coupon, error) {
	c := couponConditions(validAt)
	suffix, args := c.page(limit, offset)
	query := `
		SELECT id, code, discount_rate, max_discount, valid_from, valid_until, created_at, deleted_at
		FROM coupons` + c.where() + ` ORDER BY valid_until` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find coupons",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all coupons limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var coupons []*entity.Coupon
	for rows.Next() {
		var coupon entity.Coupon
		var deletedAt *time.Time
		err := rows.Scan(
			&coupon.ID,
			&coupon.Code,
			&coupon.DiscountRate,
			&coupon.MaxDiscount,
			&coupon.ValidFrom,
			&coupon.ValidUntil,
			&coupon.CreatedAt,
			&deletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan coupon row", zap.Error(err))
			return nil, fmt.Errorf("scan coupon row: %w", err)
		}
		coupon.Lifecycle = entity.LifecycleFrom(deletedAt)
		coupons = append(coupons, &coupon)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate coupon rows: %w", err)
	}

	return coupons, nil
}

func (r *couponRepository) CountAll(ctx context.Context, validAt *time.Time) (int64, error) {
	c := couponConditions(validAt)
	query := `SELECT COUNT(*) FROM coupons` + c.where()

	var total int64
	if err := r.db.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count coupons", zap.Error(err))
		return 0, fmt.Errorf("count all coupons: %w", err)
	}

	return total, nil
}

func (r *couponRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE coupons SET deleted_at = $2 WHERE id = $1 AND ` + notDeleted

	result, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		r.log.Error("Failed to delete coupon", zap.Error(err), zap.String("coupon_id", id.String()))
		return fmt.Errorf("delete coupon %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("coupon %s not found", id.String()))
	}

	r.log.Info("Coupon deleted", zap.String("coupon_id", id.String()))
	return nil
}
