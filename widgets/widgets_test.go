package widgets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"listkit/data"
)

// parseDoc parses rendered widget output so tests can assert on structure
// instead of exact markup.
func parseDoc(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func findOne(t *testing.T, n *html.Node, tag string) *html.Node {
	t.Helper()
	all := findAll(n, tag)
	require.Len(t, all, 1, "expected exactly one <%s>", tag)
	return all[0]
}

func attrOf(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrOf(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// titleRecords builds n records named item-a, item-b, and so on.
func titleRecords(n int) []any {
	items := make([]any, n)
	for i := range items {
		items[i] = map[string]any{
			"title": "item-" + string(rune('a'+i)),
			"rank":  i + 1,
		}
	}
	return items
}

func pagedProvider(items []any, page, pageSize int) *data.SliceProvider {
	pg := data.NewPagination(0)
	pg.Page = page
	pg.PageSize = pageSize
	pg.Route = "/posts"
	return data.NewSliceProvider(items, data.WithPagination(pg))
}
