package response

import (
	"time"

	"marketplace-api/internal/data/entity"
)

type ChannelSummary struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id"`
	Name      string    `json:"name"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

func ChannelToSummary(channel *entity.Channel) ChannelSummary {
	return ChannelSummary{
		ID:        channel.ID.String(),
		SellerID:  channel.SellerID.String(),
		Name:      channel.Name,
		Platform:  channel.Platform,
		CreatedAt: channel.CreatedAt,
	}
}
