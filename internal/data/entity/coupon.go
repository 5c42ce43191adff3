package entity

import "time"

type Coupon struct {
	BaseSimple
	Lifecycle    Lifecycle `db:"-"`
	Code         string    `db:"code"`
	DiscountRate float64   `db:"discount_rate"`
	MaxDiscount  *float64  `db:"max_discount"`
	ValidFrom    time.Time `db:"valid_from"`
	ValidUntil   time.Time `db:"valid_until"`
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	return !c.Lifecycle.IsDeleted() && !t.Before(c.ValidFrom) && t.Before(c.ValidUntil)
}
