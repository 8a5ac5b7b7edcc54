package widgets

import (
	"listkit/data"
)

// LinkSorter renders one toggle link per sortable attribute. A link for an
// attribute in the current sort state carries its direction ("asc"/"desc")
// as a class.
type LinkSorter struct {
	framework  Framework
	options    Options // the <ul>
	attributes []string
	labels     map[string]string
}

// NewLinkSorter returns a sorter over the provider's sortable attributes.
func NewLinkSorter() LinkSorter {
	return LinkSorter{}
}

func (ls LinkSorter) WithFramework(f Framework) LinkSorter { ls.framework = f; return ls }
func (ls LinkSorter) WithOptions(o Options) LinkSorter     { ls.options = o; return ls }

// WithAttributes restricts the sorter to a subset of the sortable
// attributes, in display order.
func (ls LinkSorter) WithAttributes(attrs ...string) LinkSorter {
	ls.attributes = attrs
	return ls
}

// WithLabels overrides display labels per attribute name.
func (ls LinkSorter) WithLabels(labels map[string]string) LinkSorter {
	ls.labels = labels
	return ls
}

// Render produces the sorter HTML for a standalone sort state.
func (ls LinkSorter) Render(s data.Sort) (string, error) {
	th, err := themeFor("LinkSorter", ls.framework)
	if err != nil {
		return "", err
	}
	return ls.render(th, &s), nil
}

func (ls LinkSorter) render(th theme, s *data.Sort) string {
	if s == nil {
		return ""
	}
	attrs := ls.attributes
	if len(attrs) == 0 {
		attrs = s.Attributes
	}
	if len(attrs) == 0 {
		return ""
	}

	var items []string
	for _, attr := range attrs {
		if !s.Sortable(attr) {
			continue
		}
		items = append(items, renderTag("li", ls.renderLink(s, attr), Options{}))
	}
	if len(items) == 0 {
		return ""
	}
	return renderTag("ul", join(items), ls.options, th.sorterClass)
}

func (ls LinkSorter) renderLink(s *data.Sort, attr string) string {
	label := ls.labels[attr]
	if label == "" {
		label = humanize(attr)
	}
	var class string
	if dir, ok := s.Order(attr); ok {
		class = dir.String()
	}
	return anchor(s.CreateURL(attr), escape(label), Options{Class: class})
}
