package repository

import (
	"context"
	"fmt"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OwnerFilter restricts reads to one seller's or one member's records.
// Nil fields are not filtered on.
type OwnerFilter struct {
	SellerID *uuid.UUID
	MemberID *uuid.UUID
}

func (f OwnerFilter) conditions() *conditions {
	c := &conditions{}
	if f.SellerID != nil {
		c.add("seller_id = $%d", *f.SellerID)
	}
	if f.MemberID != nil {
		c.add("member_id = $%d", *f.MemberID)
	}
	return c
}

type SaleRepository interface {
	FindAll(ctx context.Context, filter OwnerFilter, limit, offset int) ([]*entity.Sale, error)
	CountAll(ctx context.Context, filter OwnerFilter) (int64, error)
}

type saleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSaleRepository(db database.PgxIface, log *zap.Logger) SaleRepository {
	return &saleRepository{
		db:  db,
		log: log.With(zap.String("repository", "sale")),
	}
}

func (r *saleRepository) FindAll(ctx context.Context, filter OwnerFilter, limit, offset int) ([]*entity.Sale, error) {
	c := filter.conditions()
	suffix, args := c.page(limit, offset)
	query := `
		SELECT id, product_id, seller_id, member_id, quantity, total_price, sold_at
		FROM sales` + c.where() + ` ORDER BY sold_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find sales",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all sales limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var sale entity.Sale
		err := rows.Scan(
			&sale.ID,
			&sale.ProductID,
			&sale.SellerID,
			&sale.MemberID,
			&sale.Quantity,
			&sale.TotalPrice,
			&sale.SoldAt,
		)
		if err != nil {
			r.log.Error("Failed to scan sale row", zap.Error(err))
			return nil, fmt.Errorf("scan sale row: %w", err)
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate sale rows: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) CountAll(ctx context.Context, filter OwnerFilter) (int64, error) {
	c := filter.conditions()
	query := `SELECT COUNT(*) FROM sales` + c.where()

	var total int64
	if err := r.db.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count sales", zap.Error(err))
		return 0, fmt.Errorf("count all sales: %w", err)
	}

	return total, nil
}
