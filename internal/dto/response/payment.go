package response

import (
	"time"

	"marketplace-api/internal/data/entity"
)

type PaymentSummary struct {
	ID        string               `json:"id"`
	SaleID    string               `json:"sale_id"`
	MemberID  string               `json:"member_id"`
	Amount    float64              `json:"amount"`
	Method    string               `json:"method"`
	Status    entity.PaymentStatus `json:"status"`
	PaidAt    *time.Time           `json:"paid_at,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func PaymentToSummary(payment *entity.Payment) PaymentSummary {
	return PaymentSummary{
		ID:        payment.ID.String(),
		SaleID:    payment.SaleID.String(),
		MemberID:  payment.MemberID.String(),
		Amount:    payment.Amount,
		Method:    payment.Method,
		Status:    payment.Status,
		PaidAt:    payment.PaidAt,
		CreatedAt: payment.CreatedAt,
	}
}
