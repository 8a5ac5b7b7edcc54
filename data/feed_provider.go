package data

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedProvider serves the entries of an RSS/Atom feed as records with
// title, link, author and published_at attributes. The feed is fetched
// once on first use; paging and sorting follow SliceProvider semantics.
type FeedProvider struct {
	url        string
	limit      int
	pagination *Pagination
	sortState  *Sort

	inner *SliceProvider
}

// FeedOption configures a FeedProvider at construction time.
type FeedOption func(*FeedProvider)

// WithFeedLimit keeps only the first n feed entries.
func WithFeedLimit(n int) FeedOption {
	return func(fp *FeedProvider) { fp.limit = n }
}

// WithFeedPagination attaches a pagination window.
func WithFeedPagination(p Pagination) FeedOption {
	return func(fp *FeedProvider) { fp.pagination = &p }
}

// WithFeedSort attaches a sort descriptor.
func WithFeedSort(s Sort) FeedOption {
	return func(fp *FeedProvider) { fp.sortState = &s }
}

// NewFeedProvider builds a provider over the feed at the given URL.
func NewFeedProvider(feedURL string, opts ...FeedOption) *FeedProvider {
	fp := &FeedProvider{url: feedURL}
	for _, opt := range opts {
		opt(fp)
	}
	return fp
}

func (fp *FeedProvider) Items(ctx context.Context) ([]any, error) {
	if err := fp.fetch(ctx); err != nil {
		return nil, err
	}
	return fp.inner.Items(ctx)
}

func (fp *FeedProvider) Keys(items []any) []string {
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = stringify(Attr(item, "link"))
	}
	return keys
}

func (fp *FeedProvider) TotalCount(ctx context.Context) (int, error) {
	if err := fp.fetch(ctx); err != nil {
		return 0, err
	}
	return fp.inner.TotalCount(ctx)
}

func (fp *FeedProvider) Pagination() *Pagination { return fp.pagination }
func (fp *FeedProvider) Sort() *Sort             { return fp.sortState }

func (fp *FeedProvider) fetch(ctx context.Context) error {
	if fp.inner != nil {
		return nil
	}

	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(fp.url, ctx)
	if err != nil {
		return err
	}

	entries := feed.Items
	if fp.limit > 0 && len(entries) > fp.limit {
		entries = entries[:fp.limit]
	}

	records := make([]any, 0, len(entries))
	for _, entry := range entries {
		var published time.Time
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			published = *entry.UpdatedParsed
		}
		var author string
		if entry.Author != nil {
			author = entry.Author.Name
		}
		records = append(records, map[string]any{
			"title":        entry.Title,
			"link":         entry.Link,
			"author":       author,
			"published_at": published,
		})
	}

	inner := &SliceProvider{src: records}
	inner.pagination = fp.pagination
	inner.sortState = fp.sortState
	fp.inner = inner
	return nil
}
