package entity

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryStatus string

const (
	DeliveryStatusPreparing DeliveryStatus = "preparing"
	DeliveryStatusShipped   DeliveryStatus = "shipped"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusReturned  DeliveryStatus = "returned"
)

type Delivery struct {
	ID             uuid.UUID      `db:"id"`
	SaleID         uuid.UUID      `db:"sale_id"`
	MemberID       uuid.UUID      `db:"member_id"`
	Courier        string         `db:"courier"`
	TrackingNumber *string        `db:"tracking_number"`
	Status         DeliveryStatus `db:"status"`
	ShippedAt      *time.Time     `db:"shipped_at"`
	DeliveredAt    *time.Time     `db:"delivered_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
