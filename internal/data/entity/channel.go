package entity

import "github.com/google/uuid"

// Channel is a storefront a seller sells through (own shop, external platform, ...).
type Channel struct {
	Base
	SellerID uuid.UUID `db:"seller_id"`
	Name     string    `db:"name"`
	Platform string    `db:"platform"`
}
