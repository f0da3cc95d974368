package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page     int // 1-based page number
	PageSize int // Items per page
}

// ParseQueryParams reads "page" and "limit" from the query string.
//
// A missing or non-positive page means page 1. A missing limit means the
// configured page size, and a larger one is capped at MaxPageSize. Only
// non-numeric values are rejected.
func ParseQueryParams(r *http.Request, cfg Config) (Params, error) {
	cfg = cfg.normalize()
	params := Params{
		Page:     1,
		PageSize: cfg.PageSize,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: page must be an integer")
		}
		if page > 1 {
			params.Page = page
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: limit must be an integer")
		}
		switch {
		case limit > cfg.MaxPageSize:
			params.PageSize = cfg.MaxPageSize
		case limit > 0:
			params.PageSize = limit
		}
	}

	return params, nil
}
