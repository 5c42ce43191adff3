package repository

import (
	"context"
	"fmt"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DeliveryRepository interface {
	FindAll(ctx context.Context, filter OwnerFilter, limit, offset int) ([]*entity.Delivery, error)
	CountAll(ctx context.Context, filter OwnerFilter) (int64, error)
	// UpdateStatusBySeller changes a delivery whose sale belongs to sellerID.
	UpdateStatusBySeller(ctx context.Context, id, sellerID uuid.UUID, status entity.DeliveryStatus, trackingNumber *string, at time.Time) error
}

type deliveryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDeliveryRepository(db database.PgxIface, log *zap.Logger) DeliveryRepository {
	return &deliveryRepository{
		db:  db,
		log: log.With(zap.String("repository", "delivery")),
	}
}

func (r *deliveryRepository) FindAll(ctx context.Context, filter OwnerFilter, limit, offset int) ([]*entity.Delivery, error) {
	filter.SellerID = nil
	c := filter.conditions()
	suffix, args := c.page(limit, offset)
	query := `
		SELECT id, sale_id, member_id, courier, tracking_number, status, shipped_at, delivered_at, updated_at
		FROM deliveries` + c.where() + ` ORDER BY updated_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find deliveries",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all deliveries limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var deliveries []*entity.Delivery
	for rows.Next() {
		var delivery entity.Delivery
		err := rows.Scan(
			&delivery.ID,
			&delivery.SaleID,
			&delivery.MemberID,
			&delivery.Courier,
			&delivery.TrackingNumber,
			&delivery.Status,
			&delivery.ShippedAt,
			&delivery.DeliveredAt,
			&delivery.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan delivery row", zap.Error(err))
			return nil, fmt.Errorf("scan delivery row: %w", err)
		}
		deliveries = append(deliveries, &delivery)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate delivery rows: %w", err)
	}

	return deliveries, nil
}

func (r *deliveryRepository) CountAll(ctx context.Context, filter OwnerFilter) (int64, error) {
	filter.SellerID = nil
	c := filter.conditions()
	query := `SELECT COUNT(*) FROM deliveries` + c.where()

	var total int64
	if err := r.db.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count deliveries", zap.Error(err))
		return 0, fmt.Errorf("count all deliveries: %w", err)
	}

	return total, nil
}

func (r *deliveryRepository) UpdateStatusBySeller(ctx context.Context, id, sellerID uuid.UUID, status entity.DeliveryStatus, trackingNumber *string, at time.Time) error {
	query := `
		UPDATE deliveries AS d
		SET status = $3,
		    tracking_number = COALESCE($4, d.tracking_number),
		    shipped_at = CASE WHEN $3 = 'shipped' AND d.shipped_at IS NULL THEN $5 ELSE d.shipped_at END,
		    delivered_at = CASE WHEN $3 = 'delivered' THEN $5 ELSE d.delivered_at END,
		    updated_at = $5
		FROM sales AS s
		WHERE d.id = $1 AND d.sale_id = s.id AND s.seller_id = $2
	`

	result, err := r.db.Exec(ctx, query, id, sellerID, string(status), trackingNumber, at)
	if err != nil {
		r.log.Error("Failed to update delivery status",
			zap.Error(err),
			zap.String("delivery_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update delivery %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("delivery %s not found", id.String()))
	}

	return nil
}
