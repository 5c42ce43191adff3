package response

import (
	"time"

	"marketplace-api/internal/data/entity"
)

type CouponSummary struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	DiscountRate float64   `json:"discount_rate"`
	MaxDiscount  *float64  `json:"max_discount,omitempty"`
	ValidFrom    time.Time `json:"valid_from"`
	ValidUntil   time.Time `json:"valid_until"`
	CreatedAt    time.Time `json:"created_at"`
}

func CouponToSummary(coupon *entity.Coupon) CouponSummary {
	return CouponSummary{
		ID:           coupon.ID.String(),
		Code:         coupon.Code,
		DiscountRate: coupon.DiscountRate,
		MaxDiscount:  coupon.MaxDiscount,
		ValidFrom:    coupon.ValidFrom,
		ValidUntil:   coupon.ValidUntil,
		CreatedAt:    coupon.CreatedAt,
	}
}
