package widgets

// Framework selects the CSS class vocabulary emitted by the widgets.
type Framework string

const (
	Bootstrap Framework = "bootstrap"
	Bulma     Framework = "bulma"
)

// theme is the resolved class vocabulary for one framework.
type theme struct {
	// pager
	pagerNavClass      string // non-empty wraps the list in a <nav>
	pagerListClass     string
	pagerItemClass     string
	pagerLinkClass     string
	pagerActiveOnLink  bool // active class goes on <a> instead of <li>
	pagerActiveClass   string
	pagerDisabledClass string

	// grid
	tableClass string

	// sections
	summaryClass string
	emptyClass   string
	sorterClass  string
}

var themes = map[Framework]theme{
	Bootstrap: {
		pagerListClass:     "pagination",
		pagerItemClass:     "page-item",
		pagerLinkClass:     "page-link",
		pagerActiveClass:   "active",
		pagerDisabledClass: "disabled",
		tableClass:         "table",
		summaryClass:       "summary",
		emptyClass:         "empty",
		sorterClass:        "sorter",
	},
	Bulma: {
		pagerNavClass:      "pagination",
		pagerListClass:     "pagination-list",
		pagerLinkClass:     "pagination-link",
		pagerActiveOnLink:  true,
		pagerActiveClass:   "is-current",
		pagerDisabledClass: "is-disabled",
		tableClass:         "table",
		summaryClass:       "summary",
		emptyClass:         "empty",
		sorterClass:        "sorter",
	},
}

// themeFor resolves the class vocabulary for a framework selector. The
// empty selector means Bootstrap; anything else unknown is a ConfigError.
func themeFor(widget string, f Framework) (theme, error) {
	if f == "" {
		f = Bootstrap
	}
	th, ok := themes[f]
	if !ok {
		return theme{}, configErrorf(widget, "unsupported css framework %q", string(f))
	}
	return th, nil
}
