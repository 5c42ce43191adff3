package response

import (
	"time"

	"marketplace-api/internal/data/entity"
)

type SaleSummary struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	SellerID   string    `json:"seller_id"`
	MemberID   string    `json:"member_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	SoldAt     time.Time `json:"sold_at"`
}

func SaleToSummary(sale *entity.Sale) SaleSummary {
	return SaleSummary{
		ID:         sale.ID.String(),
		ProductID:  sale.ProductID.String(),
		SellerID:   sale.SellerID.String(),
		MemberID:   sale.MemberID.String(),
		Quantity:   sale.Quantity,
		TotalPrice: sale.TotalPrice,
		SoldAt:     sale.SoldAt,
	}
}
