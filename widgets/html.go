package widgets

import (
	"html"
	"sort"
	"strings"

	"github.com/rohanthewiz/element"
)

// Options describes the HTML wrapper of a widget section: the tag name and
// its attributes. The zero value renders the widget's default tag with no
// attributes. Options are plain values; With* setters on the widgets copy
// them, so a configured widget never shares mutable state.
type Options struct {
	// Tag overrides the default wrapper tag.
	Tag string

	ID    string
	Class string

	// Attrs holds any further attributes, rendered in key order.
	Attrs map[string]string
}

// tagOr returns the configured tag or the given default.
func (o Options) tagOr(def string) string {
	if o.Tag != "" {
		return o.Tag
	}
	return def
}

// attrPairs flattens the options into the attribute pair list the element
// builder consumes. Extra classes are prepended before the configured
// class; attribute order is deterministic so renders are reproducible.
func (o Options) attrPairs(extraClasses ...string) []string {
	var pairs []string
	if o.ID != "" {
		pairs = append(pairs, "id", o.ID)
	}
	if class := mergeClasses(append(extraClasses, o.Class)...); class != "" {
		pairs = append(pairs, "class", class)
	}
	keys := make([]string, 0, len(o.Attrs))
	for k := range o.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pairs = append(pairs, k, o.Attrs[k])
	}
	return pairs
}

func mergeClasses(classes ...string) string {
	var kept []string
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " ")
}

// renderTag wraps pre-rendered inner HTML in a single element described by
// the options.
func renderTag(defTag, inner string, o Options, extraClasses ...string) string {
	b := element.NewBuilder()
	b.Ele(o.tagOr(defTag), o.attrPairs(extraClasses...)...).R(
		b.T(inner),
	)
	return b.String()
}

// anchor renders one <a> with pre-escaped label HTML.
func anchor(href, labelHTML string, o Options, extraClasses ...string) string {
	pairs := append([]string{"href", href}, o.attrPairs(extraClasses...)...)
	b := element.NewBuilder()
	b.A(pairs...).R(
		b.T(labelHTML),
	)
	return b.String()
}

// escape HTML-escapes text content.
func escape(s string) string {
	return html.EscapeString(s)
}

// humanize turns an attribute name such as "published_at" into a display
// label ("Published At").
func humanize(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
