// Package widgets renders HTML list and grid views from paginated,
// sortable data providers. A view is configured through With* builder
// methods that copy the receiver, so configurations are immutable values
// and Render is idempotent: the same configuration over the same data
// always yields the same HTML.
package widgets

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"listkit/data"
	"listkit/i18n"
)

// DefaultLayout arranges the standard sections of a view. Any `{token}`
// placeholder whose section is unknown renders as an empty string.
const DefaultLayout = "{summary}\n{items}\n{pager}"

var layoutToken = regexp.MustCompile(`\{\w+\}`)

// baseView carries the configuration shared by ListView and GridView and
// drives the single linear render pass.
type baseView struct {
	provider  data.Provider
	framework Framework

	layout  string
	options Options // the view wrapper, default <div>

	// outer, when set, nests the whole view in one more container tag.
	outer *Options

	emptyText    string // "" means the translated default
	emptyOptions Options
	showOnEmpty  bool

	summary        string // "" means the translated default
	summaryOptions Options

	pager  LinkPager
	sorter LinkSorter
}

func newBaseView(p data.Provider) baseView {
	return baseView{
		provider: p,
		layout:   DefaultLayout,
		pager:    NewLinkPager(),
		sorter:   NewLinkSorter(),
	}
}

// render runs the pass shared by both views. widgetName labels errors,
// widgetClass is the default wrapper class, and renderItems produces the
// {items} section from the fetched page.
func (v baseView) render(ctx context.Context, widgetName, widgetClass string,
	renderItems func(th theme, items []any, keys []string) string) (string, error) {

	if v.provider == nil {
		return "", configErrorf(widgetName, "no data provider configured")
	}
	th, err := themeFor(widgetName, v.framework)
	if err != nil {
		return "", err
	}

	items, err := v.provider.Items(ctx)
	if err != nil {
		return "", err
	}
	keys := v.provider.Keys(items)
	count := len(items)

	var content string
	if count > 0 || v.showOnEmpty {
		content = layoutToken.ReplaceAllStringFunc(v.layout, func(token string) string {
			switch token {
			case "{items}":
				return renderItems(th, items, keys)
			case "{summary}":
				return v.renderSummary(th, count)
			case "{pager}":
				return v.renderPager(th, count)
			case "{sorter}":
				return v.renderSorter(th, count)
			default:
				return ""
			}
		})
	} else {
		content = v.renderEmpty(th)
	}

	out := renderTag("div", content, v.options, widgetClass)
	if v.outer != nil {
		out = renderTag("div", out, *v.outer)
	}
	return out, nil
}

// renderSummary interpolates the pagination window into the summary
// template. Without a pagination state the whole result set is one page.
func (v baseView) renderSummary(th theme, count int) string {
	if count <= 0 {
		return ""
	}

	begin, end, page, pageCount, totalCount := 1, count, 1, 1, count
	if p := v.provider.Pagination(); p != nil {
		totalCount = p.TotalCount
		begin = p.Offset() + 1
		end = begin + count - 1
		if begin > end {
			begin = end
		}
		page = p.Page
		pageCount = p.PageCount()
	}

	var text string
	if v.summary != "" {
		r := strings.NewReplacer(
			"{begin}", strconv.Itoa(begin),
			"{end}", strconv.Itoa(end),
			"{count}", strconv.Itoa(count),
			"{totalCount}", strconv.Itoa(totalCount),
			"{page}", strconv.Itoa(page),
			"{pageCount}", strconv.Itoa(pageCount),
		)
		text = r.Replace(v.summary)
	} else {
		text = i18n.Sprintf(i18n.SummaryFormat, begin, end, totalCount)
	}
	return renderTag("div", text, v.summaryOptions, th.summaryClass)
}

func (v baseView) renderEmpty(th theme) string {
	text := v.emptyText
	if text == "" {
		text = i18n.Sprintf(i18n.EmptyText)
	}
	return renderTag("div", escape(text), v.emptyOptions, th.emptyClass)
}

func (v baseView) renderPager(th theme, count int) string {
	if count <= 0 {
		return ""
	}
	return v.pager.render(th, v.provider.Pagination())
}

func (v baseView) renderSorter(th theme, count int) string {
	if count <= 0 {
		return ""
	}
	return v.sorter.render(th, v.provider.Sort())
}
