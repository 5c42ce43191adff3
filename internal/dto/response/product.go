package response

import (
	"time"

	"marketplace-api/internal/data/entity"
)

type ProductSummary struct {
	ID        string               `json:"id"`
	SellerID  string               `json:"seller_id"`
	Name      string               `json:"name"`
	Price     float64              `json:"price"`
	Stock     int                  `json:"stock"`
	Status    entity.ProductStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type ProductDetail struct {
	ProductSummary
	ChannelID   *string   `json:"channel_id,omitempty"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ProductToSummary(product *entity.Product) ProductSummary {
	return ProductSummary{
		ID:        product.ID.String(),
		SellerID:  product.SellerID.String(),
		Name:      product.Name,
		Price:     product.Price,
		Stock:     product.Stock,
		Status:    product.Status,
		CreatedAt: product.CreatedAt,
	}
}

func ProductToDetail(product *entity.Product) ProductDetail {
	detail := ProductDetail{
		ProductSummary: ProductToSummary(product),
		Description:    product.Description,
		UpdatedAt:      product.UpdatedAt,
	}

	if product.ChannelID != nil {
		channelID := product.ChannelID.String()
		detail.ChannelID = &channelID
	}

	return detail
}
