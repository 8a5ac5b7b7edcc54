package data

import (
	"context"
	"sort"
	"strconv"
)

// SliceProvider serves records from an in-memory slice, applying the
// requested sort order and page window on every Items call. It is the
// provider of choice for small data sets and for tests.
type SliceProvider struct {
	src        []any
	keyFunc    func(item any, index int) string
	pagination *Pagination
	sortState  *Sort
}

// SliceOption configures a SliceProvider at construction time.
type SliceOption func(*SliceProvider)

// WithPagination attaches a pagination window.
func WithPagination(p Pagination) SliceOption {
	return func(sp *SliceProvider) { sp.pagination = &p }
}

// WithSort attaches a sort descriptor.
func WithSort(s Sort) SliceOption {
	return func(sp *SliceProvider) { sp.sortState = &s }
}

// WithKeyField derives item keys from the named attribute.
func WithKeyField(name string) SliceOption {
	return func(sp *SliceProvider) {
		sp.keyFunc = func(item any, _ int) string {
			return stringify(Attr(item, name))
		}
	}
}

// WithKeyFunc derives item keys with a caller-supplied function. The index
// passed in is the absolute record position, not the position on the page.
func WithKeyFunc(fn func(item any, index int) string) SliceOption {
	return func(sp *SliceProvider) { sp.keyFunc = fn }
}

// NewSliceProvider builds a provider over the given records.
func NewSliceProvider(items []any, opts ...SliceOption) *SliceProvider {
	sp := &SliceProvider{src: items}
	for _, opt := range opts {
		opt(sp)
	}
	return sp
}

func (sp *SliceProvider) Items(_ context.Context) ([]any, error) {
	items := append([]any(nil), sp.src...)

	if sp.sortState != nil {
		applyOrders(items, sp.sortState.AttributeOrders())
	}

	if sp.pagination != nil {
		sp.pagination.TotalCount = len(items)
		items = window(items, sp.pagination.Offset(), sp.pagination.Limit())
	}
	return items, nil
}

func (sp *SliceProvider) Keys(items []any) []string {
	offset := 0
	if sp.pagination != nil {
		offset = sp.pagination.Offset()
	}
	keys := make([]string, len(items))
	for i, item := range items {
		if sp.keyFunc != nil {
			keys[i] = sp.keyFunc(item, offset+i)
		} else {
			keys[i] = strconv.Itoa(offset + i)
		}
	}
	return keys
}

func (sp *SliceProvider) TotalCount(_ context.Context) (int, error) {
	return len(sp.src), nil
}

func (sp *SliceProvider) Pagination() *Pagination { return sp.pagination }
func (sp *SliceProvider) Sort() *Sort             { return sp.sortState }

// applyOrders sorts records by the given attribute orders, first order
// most significant. The sort is stable so equal records keep their input
// order across renders.
func applyOrders(items []any, orders []AttributeOrder) {
	if len(orders) == 0 {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, o := range orders {
			c := compareAttr(Attr(items[i], o.Name), Attr(items[j], o.Name))
			if c == 0 {
				continue
			}
			if o.Direction == Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func window(items []any, offset, limit int) []any {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
