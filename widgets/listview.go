package widgets

import (
	"context"
	"strings"

	"listkit/data"
)

// ItemRenderer produces the HTML fragment for one record. key is the
// provider's stable key for the record and index its 0-based position on
// the current page.
type ItemRenderer func(item any, key string, index int) string

// ListView renders one wrapper element per record, in page order, with
// summary, pager and sorter sections around them.
type ListView struct {
	baseView

	itemRenderer ItemRenderer
	itemOptions  Options // per-item wrapper, default <div>
	separator    string
}

// NewListView returns a list view over the provider with the default
// layout and a newline separator between items.
func NewListView(p data.Provider) ListView {
	return ListView{
		baseView:  newBaseView(p),
		separator: "\n",
	}
}

// WithFramework selects the CSS class vocabulary (Bootstrap or Bulma).
func (v ListView) WithFramework(f Framework) ListView { v.framework = f; return v }

// WithLayout replaces the section layout template.
func (v ListView) WithLayout(layout string) ListView { v.layout = layout; return v }

// WithOptions configures the view wrapper element.
func (v ListView) WithOptions(o Options) ListView { v.options = o; return v }

// WithContainer nests the view inside one more container element.
func (v ListView) WithContainer(o Options) ListView { v.outer = &o; return v }

// WithEmptyText replaces the translated default empty-state text.
func (v ListView) WithEmptyText(text string) ListView { v.emptyText = text; return v }

// WithEmptyOptions configures the empty-state wrapper element.
func (v ListView) WithEmptyOptions(o Options) ListView { v.emptyOptions = o; return v }

// WithShowOnEmpty renders the regular layout even for zero records.
func (v ListView) WithShowOnEmpty(show bool) ListView { v.showOnEmpty = show; return v }

// WithSummary replaces the summary template. Supported placeholders:
// {begin} {end} {count} {totalCount} {page} {pageCount}.
func (v ListView) WithSummary(template string) ListView { v.summary = template; return v }

// WithSummaryOptions configures the summary wrapper element.
func (v ListView) WithSummaryOptions(o Options) ListView { v.summaryOptions = o; return v }

// WithPager replaces the pager renderer configuration.
func (v ListView) WithPager(p LinkPager) ListView { v.pager = p; return v }

// WithSorter replaces the sorter renderer configuration.
func (v ListView) WithSorter(s LinkSorter) ListView { v.sorter = s; return v }

// WithItemRenderer sets the per-record fragment renderer. Without one the
// escaped record key is rendered.
func (v ListView) WithItemRenderer(r ItemRenderer) ListView { v.itemRenderer = r; return v }

// WithItemOptions configures the per-item wrapper element.
func (v ListView) WithItemOptions(o Options) ListView { v.itemOptions = o; return v }

// WithSeparator sets the raw HTML placed between items.
func (v ListView) WithSeparator(sep string) ListView { v.separator = sep; return v }

// Render produces the view HTML.
func (v ListView) Render(ctx context.Context) (string, error) {
	return v.render(ctx, "ListView", "list-view", v.renderItems)
}

func (v ListView) renderItems(_ theme, items []any, keys []string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = v.renderItem(item, keys[i], i)
	}
	return strings.Join(parts, v.separator)
}

func (v ListView) renderItem(item any, key string, index int) string {
	var content string
	if v.itemRenderer != nil {
		content = v.itemRenderer(item, key, index)
	} else {
		content = escape(key)
	}

	opts := v.itemOptions
	attrs := map[string]string{"data-key": key}
	for k, val := range opts.Attrs {
		attrs[k] = val
	}
	opts.Attrs = attrs
	return renderTag("div", content, opts)
}
