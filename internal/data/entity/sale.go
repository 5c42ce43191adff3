package entity

import (
	"time"

	"github.com/google/uuid"
)

type Sale struct {
	ID         uuid.UUID `db:"id"`
	ProductID  uuid.UUID `db:"product_id"`
	SellerID   uuid.UUID `db:"seller_id"`
	MemberID   uuid.UUID `db:"member_id"`
	Quantity   int       `db:"quantity"`
	TotalPrice float64   `db:"total_price"`
	SoldAt     time.Time `db:"sold_at"`
}
