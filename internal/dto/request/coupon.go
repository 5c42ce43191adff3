package request

import "time"

type CreateCouponRequest struct {
	Code         string    `json:"code" validate:"required,min=3,max=32,alphanum"`
	DiscountRate float64   `json:"discount_rate" validate:"required,gt=0,lte=100"`
	MaxDiscount  *float64  `json:"max_discount,omitempty" validate:"omitempty,gt=0"`
	ValidFrom    time.Time `json:"valid_from" validate:"required"`
	ValidUntil   time.Time `json:"valid_until" validate:"required,gtfield=ValidFrom"`
}
