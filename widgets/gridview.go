package widgets

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"time"

	"listkit/data"
)

// Column renders one table column of a GridView.
type Column interface {
	// HeaderCell returns the inner HTML of the <th>.
	HeaderCell(v *GridView) string
	// DataCell returns the inner HTML of the <td> for one record.
	DataCell(v *GridView, item any, key string, index int) string
}

// GridView renders records as a table, one row per record, with sortable
// column headers.
type GridView struct {
	baseView

	columns      []Column
	tableOptions Options
	headerRow    Options
	rowOptions   Options
	showHeader   bool
	caption      string
	emptyCell    string // raw HTML for nil values
}

// NewGridView returns a grid view over the provider. Columns not set
// explicitly are guessed from the attributes of the first record.
func NewGridView(p data.Provider) GridView {
	return GridView{
		baseView:   newBaseView(p),
		showHeader: true,
		emptyCell:  "&nbsp;",
	}
}

// WithFramework selects the CSS class vocabulary (Bootstrap or Bulma).
func (v GridView) WithFramework(f Framework) GridView { v.framework = f; return v }

// WithLayout replaces the section layout template.
func (v GridView) WithLayout(layout string) GridView { v.layout = layout; return v }

// WithOptions configures the view wrapper element.
func (v GridView) WithOptions(o Options) GridView { v.options = o; return v }

// WithContainer nests the view inside one more container element.
func (v GridView) WithContainer(o Options) GridView { v.outer = &o; return v }

// WithEmptyText replaces the translated default empty-state text.
func (v GridView) WithEmptyText(text string) GridView { v.emptyText = text; return v }

// WithEmptyOptions configures the empty-state wrapper element.
func (v GridView) WithEmptyOptions(o Options) GridView { v.emptyOptions = o; return v }

// WithShowOnEmpty renders the regular layout even for zero records.
func (v GridView) WithShowOnEmpty(show bool) GridView { v.showOnEmpty = show; return v }

// WithSummary replaces the summary template; see ListView.WithSummary.
func (v GridView) WithSummary(template string) GridView { v.summary = template; return v }

// WithSummaryOptions configures the summary wrapper element.
func (v GridView) WithSummaryOptions(o Options) GridView { v.summaryOptions = o; return v }

// WithPager replaces the pager renderer configuration.
func (v GridView) WithPager(p LinkPager) GridView { v.pager = p; return v }

// WithSorter replaces the sorter renderer configuration.
func (v GridView) WithSorter(s LinkSorter) GridView { v.sorter = s; return v }

// WithColumns sets the table columns in display order.
func (v GridView) WithColumns(cols ...Column) GridView { v.columns = cols; return v }

// WithTableOptions configures the <table> element.
func (v GridView) WithTableOptions(o Options) GridView { v.tableOptions = o; return v }

// WithHeaderRowOptions configures the header <tr>.
func (v GridView) WithHeaderRowOptions(o Options) GridView { v.headerRow = o; return v }

// WithRowOptions configures every data <tr>.
func (v GridView) WithRowOptions(o Options) GridView { v.rowOptions = o; return v }

// WithShowHeader toggles the header row.
func (v GridView) WithShowHeader(show bool) GridView { v.showHeader = show; return v }

// WithCaption sets the table caption text.
func (v GridView) WithCaption(caption string) GridView { v.caption = caption; return v }

// WithEmptyCell sets the raw HTML shown for nil attribute values.
func (v GridView) WithEmptyCell(cell string) GridView { v.emptyCell = cell; return v }

// Render produces the view HTML.
func (v GridView) Render(ctx context.Context) (string, error) {
	return v.render(ctx, "GridView", "grid-view", v.renderItems)
}

func (v GridView) renderItems(th theme, items []any, keys []string) string {
	cols := v.columns
	if len(cols) == 0 {
		cols = guessColumns(items)
	}

	var sections []string
	if v.caption != "" {
		sections = append(sections, renderTag("caption", escape(v.caption), Options{}))
	}
	if v.showHeader {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = renderTag("th", col.HeaderCell(&v), headerOptionsOf(col))
		}
		row := renderTag("tr", join(cells), v.headerRow)
		sections = append(sections, renderTag("thead", row, Options{}))
	}

	rows := make([]string, len(items))
	for i, item := range items {
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = renderTag("td", col.DataCell(&v, item, keys[i], i), contentOptionsOf(col))
		}
		opts := v.rowOptions
		attrs := map[string]string{"data-key": keys[i]}
		for k, val := range opts.Attrs {
			attrs[k] = val
		}
		opts.Attrs = attrs
		rows[i] = renderTag("tr", join(cells), opts)
	}
	sections = append(sections, renderTag("tbody", join(rows), Options{}))

	return renderTag("table", join(sections), v.tableOptions, th.tableClass)
}

// pageOffset is the absolute position of the first record on the page.
func (v GridView) pageOffset() int {
	if p := v.provider.Pagination(); p != nil {
		return p.Offset()
	}
	return 0
}

// DataColumn renders one record attribute. Headers link to the sort toggle
// URL whenever the view's sort state covers the attribute.
type DataColumn struct {
	Attribute string

	// Label overrides the humanized attribute name.
	Label string

	// Value overrides attribute lookup; the returned string is raw HTML.
	Value func(item any, key string, index int) string

	HeaderOptions  Options
	ContentOptions Options
}

func (c DataColumn) HeaderCell(v *GridView) string {
	label := c.Label
	if label == "" {
		label = humanize(c.Attribute)
	}
	if s := v.provider.Sort(); s != nil && s.Sortable(c.Attribute) {
		var class string
		if dir, ok := s.Order(c.Attribute); ok {
			class = dir.String()
		}
		return anchor(s.CreateURL(c.Attribute), escape(label), Options{Class: class})
	}
	return escape(label)
}

func (c DataColumn) DataCell(v *GridView, item any, key string, index int) string {
	if c.Value != nil {
		return c.Value(item, key, index)
	}
	val := data.Attr(item, c.Attribute)
	if val == nil {
		return v.emptyCell
	}
	return escape(formatValue(val))
}

// SerialColumn renders the absolute 1-based row number.
type SerialColumn struct {
	HeaderOptions  Options
	ContentOptions Options
}

func (c SerialColumn) HeaderCell(*GridView) string { return "#" }

func (c SerialColumn) DataCell(v *GridView, _ any, _ string, index int) string {
	return fmt.Sprintf("%d", v.pageOffset()+index+1)
}

func headerOptionsOf(col Column) Options {
	switch c := col.(type) {
	case DataColumn:
		return c.HeaderOptions
	case SerialColumn:
		return c.HeaderOptions
	}
	return Options{}
}

func contentOptionsOf(col Column) Options {
	switch c := col.(type) {
	case DataColumn:
		return c.ContentOptions
	case SerialColumn:
		return c.ContentOptions
	}
	return Options{}
}

// guessColumns derives one DataColumn per attribute of the first record:
// sorted keys for maps, declaration-order exported fields for structs.
func guessColumns(items []any) []Column {
	if len(items) == 0 {
		return nil
	}

	var names []string
	switch rec := items[0].(type) {
	case map[string]any:
		for k := range rec {
			names = append(names, k)
		}
		sort.Strings(names)
	default:
		t := reflect.TypeOf(rec)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct {
			return nil
		}
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				names = append(names, f.Name)
			}
		}
	}

	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = DataColumn{Attribute: name}
	}
	return cols
}

// formatValue renders an attribute value as display text.
func formatValue(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02 15:04")
	}
	return fmt.Sprint(v)
}
