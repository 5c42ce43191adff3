package entity

import "github.com/google/uuid"

type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "pending"
	DepositStatusConfirmed DepositStatus = "confirmed"
	DepositStatusRejected  DepositStatus = "rejected"
)

// Deposit is a member balance top-up.
type Deposit struct {
	BaseSimple
	MemberID uuid.UUID     `db:"member_id"`
	Amount   float64       `db:"amount"`
	Status   DepositStatus `db:"status"`
}
