package repository

import (
	"context"
	"fmt"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/database"

	"go.uber.org/zap"
)

type DepositRepository interface {
	FindAll(ctx context.Context, filter OwnerFilter, limit, offset int) ([]*entity.Deposit, error)
	CountAll(ctx context.Context, filter OwnerFilter) (int64, error)
}

type depositRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDepositRepository(db database.PgxIface, log *zap.Logger) DepositRepository {
	return &depositRepository{
		db:  db,
		log: log.With(zap.String("repository", "deposit")),
	}
}

func (r *depositRepository) FindAll(ctx context.Context, filter OwnerFilter, limit, offset int) ([]*entity.Deposit, error) {
	filter.SellerID = nil
	c := filter.conditions()
	suffix, args := c.page(limit, offset)
	query := `SELECT id, member_id, amount, status, created_at FROM deposits` + c.where() + ` ORDER BY created_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find deposits",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all deposits limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var deposits []*entity.Deposit
	for rows.Next() {
		var deposit entity.Deposit
		if err := rows.Scan(&deposit.ID, &deposit.MemberID, &deposit.Amount, &deposit.Status, &deposit.CreatedAt); err != nil {
			r.log.Error("Failed to scan deposit row", zap.Error(err))
			return nil, fmt.Errorf("scan deposit row: %w", err)
		}
		deposits = append(deposits, &deposit)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate deposit rows: %w", err)
	}

	return deposits, nil
}

func (r *depositRepository) CountAll(ctx context.Context, filter OwnerFilter) (int64, error) {
	filter.SellerID = nil
	c := filter.conditions()
	query := `SELECT COUNT(*) FROM deposits` + c.where()

	var total int64
	if err := r.db.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count deposits", zap.Error(err))
		return 0, fmt.Errorf("count all deposits: %w", err)
	}

	return total, nil
}
