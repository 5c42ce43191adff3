package response

import (
	"time"

	"marketplace-api/internal/data/entity"
)

type DeliverySummary struct {
	ID             string                `json:"id"`
	SaleID         string                `json:"sale_id"`
	Courier        string                `json:"courier"`
	TrackingNumber *string               `json:"tracking_number,omitempty"`
	Status         entity.DeliveryStatus `json:"status"`
	ShippedAt      *time.Time            `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time            `json:"delivered_at,omitempty"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func DeliveryToSummary(delivery *entity.Delivery) DeliverySummary {
	return DeliverySummary{
		ID:             delivery.ID.String(),
		SaleID:         delivery.SaleID.String(),
		Courier:        delivery.Courier,
		TrackingNumber: delivery.TrackingNumber,
		Status:         delivery.Status,
		ShippedAt:      delivery.ShippedAt,
		DeliveredAt:    delivery.DeliveredAt,
		UpdatedAt:      delivery.UpdatedAt,
	}
}
