package response

import "marketplace-api/pkg/utils"

// PaginatedResponse is the page envelope shared by every list endpoint.
type PaginatedResponse[T any] struct {
	Pagination PaginationMeta `json:"pagination"`
	Data       []T            `json:"data"`
}

// PaginationMeta; CurrentPage is 1-indexed.
type PaginationMeta struct {
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	TotalRecords int64 `json:"total_records"`
	TotalPages   int   `json:"total_pages"`
}

func NewPaginatedResponse[T any](data []T, page, perPage int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			CurrentPage:  page,
			PageSize:     perPage,
			TotalRecords: total,
			TotalPages:   utils.CalculateTotalPages(total, perPage),
		},
	}
}

type (
	AccountPage  = PaginatedResponse[AccountSummary]
	ChannelPage  = PaginatedResponse[ChannelSummary]
	ProductPage  = PaginatedResponse[ProductSummary]
	CouponPage   = PaginatedResponse[CouponSummary]
	SalePage     = PaginatedResponse[SaleSummary]
	PaymentPage  = PaginatedResponse[PaymentSummary]
	DeliveryPage = PaginatedResponse[DeliverySummary]
	DepositPage  = PaginatedResponse[DepositSummary]
)
