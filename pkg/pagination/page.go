package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewPageRequest clamps page and pageSize into the allowed range.
func NewPageRequest(page, pageSize int) PageRequest {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

// FromQuery reads "page" and "page_size" from a URL query. Missing values take the defaults;
// values that are present but not integers are an error.
func FromQuery(q url.Values) (PageRequest, error) {
	page, err := intParam(q, "page")
	if err != nil {
		return PageRequest{}, err
	}
	size, err := intParam(q, "page_size")
	if err != nil {
		return PageRequest{}, err
	}
	return NewPageRequest(page, size), nil
}

func intParam(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p PageRequest) Limit() int {
	return p.PageSize
}

// PageResult is one page of T plus enough totals for a client to page on.
type PageResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewPageResult[T any](data []T, total int64, req PageRequest) PageResult[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if total > 0 && req.PageSize > 0 {
		totalPages = int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	}
	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}
}
