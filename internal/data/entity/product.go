package entity

import "github.com/google/uuid"

type ProductStatus string

const (
	ProductStatusActive  ProductStatus = "active"
	ProductStatusHidden  ProductStatus = "hidden"
	ProductStatusSoldOut ProductStatus = "sold_out"
)

type Product struct {
	Base
	SellerID    uuid.UUID     `db:"seller_id"`
	ChannelID   *uuid.UUID    `db:"channel_id"`
	Name        string        `db:"name"`
	Description *string       `db:"description"`
	Price       float64       `db:"price"`
	Stock       int           `db:"stock"`
	Status      ProductStatus `db:"status"`
}
