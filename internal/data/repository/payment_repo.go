package repository

import (
	"context"
	"fmt"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/database"

	"go.uber.org/zap"
)

type PaymentRepository interface {
	FindAll(ctx context.Context, filter OwnerFilter, limit, offset int) ([]*entity.Payment, error)
	CountAll(ctx context.Context, filter OwnerFilter) (int64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) FindAll(ctx context.Context, filter OwnerFilter, limit, offset int) ([]*entity.Payment, error) {
	filter.SellerID = nil // payments carry no seller column
	c := filter.conditions()
	suffix, args := c.page(limit, offset)
	query := `
		SELECT id, sale_id, member_id, amount, method, status, paid_at, created_at
		FROM payments` + c.where() + ` ORDER BY created_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find payments",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all payments limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.SaleID,
			&payment.MemberID,
			&payment.Amount,
			&payment.Method,
			&payment.Status,
			&payment.PaidAt,
			&payment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) CountAll(ctx context.Context, filter OwnerFilter) (int64, error) {
	filter.SellerID = nil
	c := filter.conditions()
	query := `SELECT COUNT(*) FROM payments` + c.where()

	var total int64
	if err := r.db.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count payments", zap.Error(err))
		return 0, fmt.Errorf("count all payments: %w", err)
	}

	return total, nil
}
