package data

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPageSize is used when a pagination value carries no page size.
	DefaultPageSize = 20

	// MinPageSize and MaxPageSize bound the page size read from a request.
	MinPageSize = 1
	MaxPageSize = 50

	// DefaultPageParam and DefaultPageSizeParam are the query parameter
	// names used when none are configured.
	DefaultPageParam     = "page"
	DefaultPageSizeParam = "per-page"
)

// Pagination computes the offset/limit window for one page of results and
// builds page links. Page is 1-based; Offset and PageCount are derived:
//
//	Offset    = (Page-1) * PageSize
//	PageCount = ceil(TotalCount / PageSize)
type Pagination struct {
	Page       int
	PageSize   int
	TotalCount int

	// PageParam and PageSizeParam name the query parameters used by
	// CreateURL and ParsePagination.
	PageParam     string
	PageSizeParam string

	// Route is the URL path page links point at.
	Route string

	// Params holds the request query parameters to preserve in links.
	Params url.Values
}

// NewPagination returns a pagination value with library defaults.
func NewPagination(totalCount int) Pagination {
	return Pagination{
		Page:          1,
		PageSize:      DefaultPageSize,
		TotalCount:    totalCount,
		PageParam:     DefaultPageParam,
		PageSizeParam: DefaultPageSizeParam,
	}
}

// ParsePagination reads page and page-size parameters from a request query.
// Out-of-range values are clamped rather than rejected.
func ParsePagination(route string, query url.Values) Pagination {
	p := NewPagination(0)
	p.Route = route
	p.Params = query

	if raw := query.Get(p.PageParam); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 1 {
			p.Page = n
		}
	}
	if raw := query.Get(p.PageSizeParam); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			if n < MinPageSize {
				n = MinPageSize
			}
			if n > MaxPageSize {
				n = MaxPageSize
			}
			p.PageSize = n
		}
	}
	return p
}

// Offset returns the number of records before the current page.
func (p Pagination) Offset() int {
	if p.PageSize < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns the page window size, or -1 when paging is unbounded.
func (p Pagination) Limit() int {
	if p.PageSize < 1 {
		return -1
	}
	return p.PageSize
}

// PageCount returns the number of pages needed for TotalCount records.
func (p Pagination) PageCount() int {
	if p.PageSize < 1 {
		if p.TotalCount > 0 {
			return 1
		}
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// CreateURL builds the link to the given 1-based page, preserving all other
// request parameters. Query keys are encoded in sorted order, so repeated
// renders produce identical links.
func (p Pagination) CreateURL(page int) string {
	params := cloneValues(p.Params)
	params.Set(p.pageParam(), strconv.Itoa(page))
	if p.PageSize > 0 && p.PageSize != DefaultPageSize {
		params.Set(p.pageSizeParam(), strconv.Itoa(p.PageSize))
	}
	return p.Route + "?" + params.Encode()
}

func (p Pagination) pageParam() string {
	if p.PageParam == "" {
		return DefaultPageParam
	}
	return p.PageParam
}

func (p Pagination) pageSizeParam() string {
	if p.PageSizeParam == "" {
		return DefaultPageSizeParam
	}
	return p.PageSizeParam
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for key, vals := range v {
		for _, val := range vals {
			out.Add(key, val)
		}
	}
	return out
}
