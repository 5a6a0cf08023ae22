package api

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Pagination is the paging block returned by list endpoints.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListParams are the common paging parameters of list endpoints.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// ProductFilter narrows the paginated product list.
type ProductFilter struct {
	ListParams
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       string // e.g. "price_asc", "price_desc", "newest"
}

func (f ProductFilter) values() url.Values {
	q := f.ListParams.values()
	if f.CategoryID != "" {
		q.Set("category", f.CategoryID)
	}
	if f.MinPrice != nil {
		q.Set("minPrice", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q.Set("maxPrice", f.MaxPrice.String())
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	return q
}
