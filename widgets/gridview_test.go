package widgets_test

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listkit/data"
	"listkit/widgets"
)

func TestGridViewRendersTable(t *testing.T) {
	p := data.NewSliceProvider(titleRecords(3))
	out, err := widgets.NewGridView(p).Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	wrapper := findAll(doc, "div")
	require.NotEmpty(t, wrapper)
	assert.True(t, hasClass(wrapper[0], "grid-view"))

	table := findOne(t, doc, "table")
	assert.True(t, hasClass(table, "table"))

	body := findOne(t, doc, "tbody")
	assert.Len(t, findAll(body, "tr"), 3)
}

func TestGridViewGuessesColumnsFromMap(t *testing.T) {
	p := data.NewSliceProvider(titleRecords(1))
	out, err := widgets.NewGridView(p).Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	var headers []string
	for _, th := range findAll(doc, "th") {
		headers = append(headers, strings.TrimSpace(textOf(th)))
	}
	// map keys are guessed in sorted order
	assert.Equal(t, []string{"Rank", "Title"}, headers)
}

type gridPost struct {
	Title string
	Views int
}

func TestGridViewGuessesColumnsFromStruct(t *testing.T) {
	p := data.NewSliceProvider([]any{gridPost{Title: "hello", Views: 7}})
	out, err := widgets.NewGridView(p).Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	var headers []string
	for _, th := range findAll(doc, "th") {
		headers = append(headers, strings.TrimSpace(textOf(th)))
	}
	assert.Equal(t, []string{"Title", "Views"}, headers)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "7")
}

func TestGridViewExplicitColumns(t *testing.T) {
	p := data.NewSliceProvider(titleRecords(2))
	out, err := widgets.NewGridView(p).
		WithColumns(
			widgets.SerialColumn{},
			widgets.DataColumn{Attribute: "title", Label: "Post"},
		).
		Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	headers := findAll(doc, "th")
	require.Len(t, headers, 2)
	assert.Equal(t, "#", strings.TrimSpace(textOf(headers[0])))
	assert.Equal(t, "Post", strings.TrimSpace(textOf(headers[1])))
}

func TestGridViewSerialColumnCountsAcrossPages(t *testing.T) {
	p := pagedProvider(titleRecords(5), 2, 2)
	out, err := widgets.NewGridView(p).
		WithColumns(widgets.SerialColumn{}).
		Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	body := findOne(t, doc, "tbody")
	var serials []string
	for _, td := range findAll(body, "td") {
		serials = append(serials, strings.TrimSpace(textOf(td)))
	}
	assert.Equal(t, []string{"3", "4"}, serials)
}

func TestGridViewSortableHeaderLinks(t *testing.T) {
	q := url.Values{"sort": {"title"}}
	p := data.NewSliceProvider(titleRecords(3),
		data.WithSort(data.ParseSort("/posts", q, "title")))

	out, err := widgets.NewGridView(p).
		WithColumns(
			widgets.DataColumn{Attribute: "title"},
			widgets.DataColumn{Attribute: "rank"},
		).
		Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	head := findOne(t, doc, "thead")
	links := findAll(head, "a")
	require.Len(t, links, 1, "only sortable columns link")

	assert.Equal(t, "Title", strings.TrimSpace(textOf(links[0])))
	assert.True(t, hasClass(links[0], "asc"))
	assert.Equal(t, "/posts?sort=-title", attrOf(links[0], "href"))
}

func TestGridViewDataKeys(t *testing.T) {
	p := data.NewSliceProvider(titleRecords(2), data.WithKeyField("title"))
	out, err := widgets.NewGridView(p).Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	body := findOne(t, doc, "tbody")
	var keys []string
	for _, tr := range findAll(body, "tr") {
		keys = append(keys, attrOf(tr, "data-key"))
	}
	assert.Equal(t, []string{"item-a", "item-b"}, keys)
}

func TestGridViewValueOverride(t *testing.T) {
	p := data.NewSliceProvider(titleRecords(1))
	out, err := widgets.NewGridView(p).
		WithColumns(widgets.DataColumn{
			Attribute: "title",
			Value: func(item any, key string, index int) string {
				return fmt.Sprintf("<strong>%v</strong>", data.Attr(item, "title"))
			},
		}).
		Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	strong := findOne(t, doc, "strong")
	assert.Equal(t, "item-a", textOf(strong))
}

func TestGridViewEmptyCell(t *testing.T) {
	p := data.NewSliceProvider([]any{map[string]any{"title": nil}})
	out, err := widgets.NewGridView(p).
		WithColumns(widgets.DataColumn{Attribute: "title"}).
		Render(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "&nbsp;")

	out, err = widgets.NewGridView(p).
		WithColumns(widgets.DataColumn{Attribute: "title"}).
		WithEmptyCell("-").
		Render(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, out, "&nbsp;")
}

func TestGridViewFormatsTime(t *testing.T) {
	rec := map[string]any{
		"published_at": time.Date(2026, 8, 23, 9, 30, 0, 0, time.UTC),
	}
	p := data.NewSliceProvider([]any{rec})
	out, err := widgets.NewGridView(p).Render(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "2026-08-23 09:30")
}

func TestGridViewHideHeader(t *testing.T) {
	p := data.NewSliceProvider(titleRecords(1))
	out, err := widgets.NewGridView(p).
		WithShowHeader(false).
		Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	assert.Empty(t, findAll(doc, "thead"))
}

func TestGridViewCaption(t *testing.T) {
	p := data.NewSliceProvider(titleRecords(1))
	out, err := widgets.NewGridView(p).
		WithCaption("Recent posts").
		Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	caption := findOne(t, doc, "caption")
	assert.Equal(t, "Recent posts", textOf(caption))
}

func TestGridViewEscapesCellValues(t *testing.T) {
	rec := map[string]any{"title": "<script>alert(1)</script>"}
	p := data.NewSliceProvider([]any{rec})
	out, err := widgets.NewGridView(p).Render(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestGridViewEmptyState(t *testing.T) {
	p := data.NewSliceProvider(nil)
	out, err := widgets.NewGridView(p).Render(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, "No results found.")
	doc := parseDoc(t, out)
	assert.Empty(t, findAll(doc, "table"))
}

func TestGridViewLayoutWithSorterToken(t *testing.T) {
	q := url.Values{}
	p := data.NewSliceProvider(titleRecords(3),
		data.WithSort(data.ParseSort("/posts", q, "title", "rank")))

	out, err := widgets.NewGridView(p).
		WithLayout("{sorter}\n{items}").
		Render(context.Background())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	lists := findAll(doc, "ul")
	require.Len(t, lists, 1)
	assert.True(t, hasClass(lists[0], "sorter"))
}

func TestGridViewRequiresProvider(t *testing.T) {
	_, err := widgets.NewGridView(nil).Render(context.Background())

	var cfgErr *widgets.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}
