package widgets

import (
	"strconv"

	"listkit/data"
)

// LinkPager renders the page links for a pagination state: optional
// first/last buttons, previous/next, and a window of numbered buttons
// around the current page.
type LinkPager struct {
	framework      Framework
	options        Options // the <ul>
	maxButtonCount int
	prevLabel      string
	nextLabel      string
	firstLabel     string // "" hides the button
	lastLabel      string // "" hides the button
	showOnSingle   bool
}

// NewLinkPager returns a pager with the conventional defaults: a window of
// ten buttons, laquo/raquo labels and no first/last buttons. Pagers hide
// themselves when there is a single page.
func NewLinkPager() LinkPager {
	return LinkPager{
		maxButtonCount: 10,
		prevLabel:      "&laquo;",
		nextLabel:      "&raquo;",
	}
}

func (lp LinkPager) WithFramework(f Framework) LinkPager { lp.framework = f; return lp }
func (lp LinkPager) WithOptions(o Options) LinkPager     { lp.options = o; return lp }

// WithMaxButtonCount bounds the number of numbered page buttons.
func (lp LinkPager) WithMaxButtonCount(n int) LinkPager { lp.maxButtonCount = n; return lp }

// WithLabels replaces the previous/next button labels. Labels are raw HTML.
func (lp LinkPager) WithLabels(prev, next string) LinkPager {
	lp.prevLabel, lp.nextLabel = prev, next
	return lp
}

// WithEdgeLabels enables first/last page buttons. Labels are raw HTML.
func (lp LinkPager) WithEdgeLabels(first, last string) LinkPager {
	lp.firstLabel, lp.lastLabel = first, last
	return lp
}

// WithShowOnSinglePage keeps the pager visible even for a single page.
func (lp LinkPager) WithShowOnSinglePage(show bool) LinkPager { lp.showOnSingle = show; return lp }

// Render produces the pager HTML for a standalone pagination state.
func (lp LinkPager) Render(p data.Pagination) (string, error) {
	th, err := themeFor("LinkPager", lp.framework)
	if err != nil {
		return "", err
	}
	return lp.render(th, &p), nil
}

func (lp LinkPager) render(th theme, p *data.Pagination) string {
	if p == nil {
		return ""
	}
	pageCount := p.PageCount()
	if pageCount < 2 && !lp.showOnSingle {
		return ""
	}

	page := p.Page
	var buttons []string
	add := func(label string, target int, active, disabled bool) {
		buttons = append(buttons, lp.renderButton(th, p, label, target, active, disabled))
	}

	if lp.firstLabel != "" {
		add(lp.firstLabel, 1, false, page <= 1)
	}
	add(lp.prevLabel, page-1, false, page <= 1)

	begin, end := buttonRange(page, pageCount, lp.maxButtonCount)
	for i := begin; i <= end; i++ {
		add(strconv.Itoa(i), i, i == page, false)
	}

	add(lp.nextLabel, page+1, false, page >= pageCount)
	if lp.lastLabel != "" {
		add(lp.lastLabel, pageCount, false, page >= pageCount)
	}

	list := renderTag("ul", join(buttons), lp.options, th.pagerListClass)
	if th.pagerNavClass != "" {
		list = renderTag("nav", list, Options{}, th.pagerNavClass)
	}
	return list
}

// renderButton emits one <li>. Disabled buttons carry a <span> instead of
// an anchor so they are not focusable.
func (lp LinkPager) renderButton(th theme, p *data.Pagination, label string, target int, active, disabled bool) string {
	itemClasses := []string{th.pagerItemClass}
	linkClasses := []string{th.pagerLinkClass}

	if active {
		if th.pagerActiveOnLink {
			linkClasses = append(linkClasses, th.pagerActiveClass)
		} else {
			itemClasses = append(itemClasses, th.pagerActiveClass)
		}
	}
	if disabled {
		itemClasses = append(itemClasses, th.pagerDisabledClass)
	}

	var inner string
	if disabled {
		inner = renderTag("span", label, Options{}, linkClasses...)
	} else {
		inner = anchor(p.CreateURL(target), label, Options{}, linkClasses...)
	}
	return renderTag("li", inner, Options{}, itemClasses...)
}

// buttonRange returns the 1-based window of numbered buttons centered on
// the current page.
func buttonRange(page, pageCount, maxButtons int) (int, int) {
	if maxButtons < 1 {
		maxButtons = 1
	}
	begin := page - maxButtons/2
	if begin < 1 {
		begin = 1
	}
	end := begin + maxButtons - 1
	if end > pageCount {
		end = pageCount
		if begin = end - maxButtons + 1; begin < 1 {
			begin = 1
		}
	}
	return begin, end
}

func join(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\n"
		}
		out += p
	}
	return out
}
