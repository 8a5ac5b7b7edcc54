package data

import "context"

// Provider supplies one page of records plus the pagination and sort state
// that produced it. Widgets pull everything they render through this
// interface and never touch a data source directly.
//
// Pagination and Sort may return nil, which disables the corresponding
// behavior (no paging window, no sort links).
type Provider interface {
	// Items returns the records of the current page. Implementations must
	// refresh Pagination().TotalCount before applying the page window so
	// that summary and pager rendering see consistent numbers.
	Items(ctx context.Context) ([]any, error)

	// Keys returns one stable key string per item, in item order.
	Keys(items []any) []string

	// TotalCount reports the number of records across all pages.
	TotalCount(ctx context.Context) (int, error)

	Pagination() *Pagination
	Sort() *Sort
}
