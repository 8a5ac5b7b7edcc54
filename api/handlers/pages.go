package handlers

import (
	"html"

	"github.com/rohanthewiz/element"

	"listkit/data"
)

const bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"

// renderPage wraps a rendered widget in the shared page chrome.
func renderPage(title, body string) string {
	b := element.NewBuilder()
	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "utf-8"),
			b.Title().T(html.EscapeString(title)),
			b.Link("rel", "stylesheet", "href", bootstrapCSS),
		),
		b.Body("class", "container").R(
			b.Nav("class", "nav my-3").R(
				b.A("class", "nav-link", "href", "/posts").T("Posts"),
				b.A("class", "nav-link", "href", "/feeds").T("Feeds"),
			),
			b.H1("class", "h3").T(html.EscapeString(title)),
			b.Div().R(
				b.T(body),
			),
		),
	)
	return b.String()
}

// postTitleLink renders the title cell as an outbound link.
func postTitleLink(item any, _ string, _ int) string {
	title, _ := data.Attr(item, "title").(string)
	link, _ := data.Attr(item, "link").(string)

	b := element.NewBuilder()
	b.A("href", link, "target", "_blank", "rel", "noopener").T(html.EscapeString(title))
	return b.String()
}

// feedItem renders one configured feed in the feed list.
func feedItem(item any, _ string, _ int) string {
	name, _ := data.Attr(item, "name").(string)
	url, _ := data.Attr(item, "url").(string)
	rss, _ := data.Attr(item, "rss_url").(string)

	b := element.NewBuilder()
	b.Div().R(
		b.A("href", url, "target", "_blank", "rel", "noopener").T(html.EscapeString(name)),
		b.Small("class", "text-muted ms-2").T(html.EscapeString(rss)),
	)
	return b.String()
}
