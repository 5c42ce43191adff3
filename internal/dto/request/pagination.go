package request

import (
	"math"
	"net/url"

	"marketplace-api/pkg/utils"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100

	// MaxPage keeps (page-1)*per_page within int for any accepted per_page.
	MaxPage = math.MaxInt / MaxPerPage
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// PaginatedFromQuery reads ?page=&per_page=, falling back to defaults and clamping both.
func PaginatedFromQuery(query url.Values) *PaginatedRequest {
	req := &PaginatedRequest{
		Page:    utils.QueryInt(query, "page", 1),
		PerPage: utils.QueryInt(query, "per_page", DefaultPerPage),
	}

	if req.PerPage > MaxPerPage {
		req.PerPage = MaxPerPage
	}
	if req.Page > MaxPage {
		req.Page = MaxPage
	}

	return req
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(min(p.Page, MaxPage), p.Limit())
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}
