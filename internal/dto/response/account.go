package response

import (
	"time"

	"marketplace-api/internal/data/entity"
)

type AccountSummary struct {
	ID        string               `json:"id"`
	Email     string               `json:"email"`
	Name      string               `json:"name"`
	Status    entity.AccountStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type AccountDetail struct {
	AccountSummary
	Role      entity.RoleType `json:"role"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Helper converters
func AccountToSummary(account *entity.Account) AccountSummary {
	return AccountSummary{
		ID:        account.ID.String(),
		Email:     account.Email,
		Name:      account.Name,
		Status:    account.Status,
		CreatedAt: account.CreatedAt,
	}
}

func AccountToDetail(account *entity.Account) AccountDetail {
	return AccountDetail{
		AccountSummary: AccountToSummary(account),
		Role:           account.Role,
		UpdatedAt:      account.UpdatedAt,
	}
}
