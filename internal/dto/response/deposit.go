package response

import (
	"time"

	"marketplace-api/internal/data/entity"
)

type DepositSummary struct {
	ID        string               `json:"id"`
	MemberID  string               `json:"member_id"`
	Amount    float64              `json:"amount"`
	Status    entity.DepositStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

func DepositToSummary(deposit *entity.Deposit) DepositSummary {
	return DepositSummary{
		ID:        deposit.ID.String(),
		MemberID:  deposit.MemberID.String(),
		Amount:    deposit.Amount,
		Status:    deposit.Status,
		CreatedAt: deposit.CreatedAt,
	}
}
