package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	BaseSimple
	SaleID   uuid.UUID     `db:"sale_id"`
	MemberID uuid.UUID     `db:"member_id"`
	Amount   float64       `db:"amount"`
	Method   string        `db:"method"`
	Status   PaymentStatus `db:"status"`
	PaidAt   *time.Time    `db:"paid_at"`
}
