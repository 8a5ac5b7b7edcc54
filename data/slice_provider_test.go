package data_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listkit/data"
)

func postRecords() []any {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []any{
		map[string]any{"title": "gamma", "views": 10, "published_at": base.AddDate(0, 0, 2)},
		map[string]any{"title": "alpha", "views": 30, "published_at": base},
		map[string]any{"title": "beta", "views": 20, "published_at": base.AddDate(0, 0, 1)},
	}
}

func TestSliceProviderWindow(t *testing.T) {
	pg := data.NewPagination(0)
	pg.Page = 2
	pg.PageSize = 2
	p := data.NewSliceProvider(postRecords(), data.WithPagination(pg))

	items, err := p.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "beta", data.Attr(items[0], "title"))

	// the provider refreshed the pagination totals
	assert.Equal(t, 3, p.Pagination().TotalCount)
	assert.Equal(t, 2, p.Pagination().PageCount())
}

func TestSliceProviderSortsByAttribute(t *testing.T) {
	q := url.Values{"sort": {"title"}}
	p := data.NewSliceProvider(postRecords(),
		data.WithSort(data.ParseSort("/posts", q, "title")))

	items, err := p.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alpha", data.Attr(items[0], "title"))
	assert.Equal(t, "beta", data.Attr(items[1], "title"))
	assert.Equal(t, "gamma", data.Attr(items[2], "title"))
}

func TestSliceProviderSortsDescending(t *testing.T) {
	q := url.Values{"sort": {"-views"}}
	p := data.NewSliceProvider(postRecords(),
		data.WithSort(data.ParseSort("/posts", q, "views")))

	items, err := p.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, data.Attr(items[0], "views"))
	assert.Equal(t, 10, data.Attr(items[2], "views"))
}

func TestSliceProviderSortsByTime(t *testing.T) {
	q := url.Values{"sort": {"-published_at"}}
	p := data.NewSliceProvider(postRecords(),
		data.WithSort(data.ParseSort("/posts", q, "published_at")))

	items, err := p.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gamma", data.Attr(items[0], "title"))
	assert.Equal(t, "alpha", data.Attr(items[2], "title"))
}

func TestSliceProviderDoesNotMutateSource(t *testing.T) {
	src := postRecords()
	q := url.Values{"sort": {"title"}}
	p := data.NewSliceProvider(src,
		data.WithSort(data.ParseSort("/posts", q, "title")))

	_, err := p.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gamma", data.Attr(src[0], "title"))
}

func TestSliceProviderKeys(t *testing.T) {
	pg := data.NewPagination(0)
	pg.Page = 2
	pg.PageSize = 2
	p := data.NewSliceProvider(postRecords(), data.WithPagination(pg))

	items, err := p.Items(context.Background())
	require.NoError(t, err)
	// default keys are absolute record positions
	assert.Equal(t, []string{"2"}, p.Keys(items))
}

func TestSliceProviderKeyField(t *testing.T) {
	p := data.NewSliceProvider(postRecords(), data.WithKeyField("title"))

	items, err := p.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, p.Keys(items))
}

func TestSliceProviderTotalCount(t *testing.T) {
	p := data.NewSliceProvider(postRecords())
	total, err := p.TotalCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestSliceProviderOffsetPastEnd(t *testing.T) {
	pg := data.NewPagination(0)
	pg.Page = 9
	pg.PageSize = 10
	p := data.NewSliceProvider(postRecords(), data.WithPagination(pg))

	items, err := p.Items(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
