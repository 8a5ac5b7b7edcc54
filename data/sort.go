package data

import (
	"net/url"
	"strings"
)

// Direction is a sort direction for a single attribute.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Reverse flips the direction.
func (d Direction) Reverse() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// DefaultSortParam is the query parameter carrying the sort state.
const DefaultSortParam = "sort"

// AttributeOrder pairs an attribute name with its requested direction.
type AttributeOrder struct {
	Name      string
	Direction Direction
}

// Sort holds the requested sort state of a request. The wire format is a
// comma-separated list of attribute names in the sort parameter, with a
// leading "-" marking descending order, e.g. "?sort=-published_at,title".
type Sort struct {
	// Attributes lists the attribute names that may be sorted on. Names
	// not listed here are ignored when parsing the request.
	Attributes []string

	// DefaultOrders applies when the request carries no sort parameter.
	DefaultOrders []AttributeOrder

	// EnableMultiSort keeps previously sorted attributes when a new one
	// is toggled. When false a toggle replaces the whole sort state.
	EnableMultiSort bool

	// SortParam and Separator control the wire format.
	SortParam string
	Separator string

	// Route is the URL path sort links point at.
	Route string

	// Params holds the request query parameters to preserve in links.
	Params url.Values
}

// NewSort returns a sort descriptor over the given sortable attributes.
func NewSort(attributes ...string) Sort {
	return Sort{
		Attributes: attributes,
		SortParam:  DefaultSortParam,
		Separator:  ",",
	}
}

// ParseSort reads the sort state for the given attributes from a request
// query.
func ParseSort(route string, query url.Values, attributes ...string) Sort {
	s := NewSort(attributes...)
	s.Route = route
	s.Params = query
	return s
}

// Sortable reports whether the attribute may be sorted on.
func (s Sort) Sortable(name string) bool {
	for _, attr := range s.Attributes {
		if attr == name {
			return true
		}
	}
	return false
}

// AttributeOrders returns the requested orders in request order, filtered
// to sortable attributes and de-duplicated. Without a sort parameter the
// configured default orders apply.
func (s Sort) AttributeOrders() []AttributeOrder {
	raw := s.Params.Get(s.sortParam())
	if raw == "" {
		return append([]AttributeOrder(nil), s.DefaultOrders...)
	}

	var orders []AttributeOrder
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, s.separator()) {
		part = strings.TrimSpace(part)
		dir := Asc
		if strings.HasPrefix(part, "-") {
			dir = Desc
			part = part[1:]
		}
		if part == "" || seen[part] || !s.Sortable(part) {
			continue
		}
		seen[part] = true
		orders = append(orders, AttributeOrder{Name: part, Direction: dir})
		if !s.EnableMultiSort {
			break
		}
	}
	return orders
}

// Order returns the current direction of the attribute, if it is part of
// the requested sort state.
func (s Sort) Order(name string) (Direction, bool) {
	for _, o := range s.AttributeOrders() {
		if o.Name == name {
			return o.Direction, true
		}
	}
	return Asc, false
}

// CreateSortParam returns the sort parameter value that toggles the given
// attribute: an unsorted attribute becomes ascending, an ascending one
// descending, and vice versa. The toggled attribute moves to the front;
// with multi-sort enabled the remaining orders are kept behind it.
func (s Sort) CreateSortParam(name string) string {
	dir := Asc
	orders := s.AttributeOrders()
	rest := make([]AttributeOrder, 0, len(orders))
	for _, o := range orders {
		if o.Name == name {
			dir = o.Direction.Reverse()
			continue
		}
		rest = append(rest, o)
	}

	parts := []string{encodeOrder(AttributeOrder{Name: name, Direction: dir})}
	if s.EnableMultiSort {
		for _, o := range rest {
			parts = append(parts, encodeOrder(o))
		}
	}
	return strings.Join(parts, s.separator())
}

// CreateURL builds the link that toggles sorting on the given attribute,
// preserving all other request parameters.
func (s Sort) CreateURL(name string) string {
	params := cloneValues(s.Params)
	params.Set(s.sortParam(), s.CreateSortParam(name))
	return s.Route + "?" + params.Encode()
}

func (s Sort) sortParam() string {
	if s.SortParam == "" {
		return DefaultSortParam
	}
	return s.SortParam
}

func (s Sort) separator() string {
	if s.Separator == "" {
		return ","
	}
	return s.Separator
}

func encodeOrder(o AttributeOrder) string {
	if o.Direction == Desc {
		return "-" + o.Name
	}
	return o.Name
}
