package repository

import (
	"context"
	"fmt"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChannelRepository interface {
	FindAllBySeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]*entity.Channel, error)
	CountBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error)
}

type channelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewChannelRepository(db database.PgxIface, log *zap.Logger) ChannelRepository {
	return &channelRepository{
		db:  db,
		log: log.With(zap.String("repository", "channel")),
	}
}

func (r *channelRepository) FindAllBySeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]*entity.Channel, error) {
	query := `
		SELECT id, seller_id, name, platform, created_at, updated_at, deleted_at
		FROM channels
		WHERE seller_id = $1 AND ` + notDeleted + `
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, sellerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find channels",
			zap.Error(err),
			zap.String("seller_id", sellerID.String()),
		)
		return nil, fmt.Errorf("find channels for seller %s: %w", sellerID.String(), err)
	}
	defer rows.Close()

	var channels []*entity.Channel
	for rows.Next() {
		var channel entity.Channel
		var deletedAt *time.Time
		err := rows.Scan(
			&channel.ID,
			&channel.SellerID,
			&channel.Name,
			&channel.Platform,
			&channel.CreatedAt,
			&channel.UpdatedAt,
			&deletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan channel row", zap.Error(err))
			return nil, fmt.Errorf("scan channel row: %w", err)
		}
		channel.Lifecycle = entity.LifecycleFrom(deletedAt)
		channels = append(channels, &channel)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate channel rows: %w", err)
	}

	return channels, nil
}

func (r *channelRepository) CountBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM channels WHERE seller_id = $1 AND ` + notDeleted

	var total int64
	if err := r.db.QueryRow(ctx, query, sellerID).Scan(&total); err != nil {
		r.log.Error("Failed to count channels", zap.Error(err), zap.String("seller_id", sellerID.String()))
		return 0, fmt.Errorf("count channels for seller %s: %w", sellerID.String(), err)
	}

	return total, nil
}
