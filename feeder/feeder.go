package feeder

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
)

type RssFeedItem struct {
	Title       string
	Link        string
	Author      string
	PublishedAt time.Time
}

// FetchRssFeeds fetches RSS feeds from the given URL.
// If limit is greater than 0, it returns only the first limit items.
func FetchRssFeeds(ctx context.Context, rssUrl string, limit int) ([]RssFeedItem, error) {
	fp := gofeed.NewParser()

	feed, err := fp.ParseURLWithContext(rssUrl, ctx)
	if err != nil {
		return nil, err
	}

	var items []RssFeedItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		var author string
		if item.Author != nil {
			author = item.Author.Name
		}

		items = append(items, RssFeedItem{
			Title:       item.Title,
			Link:        item.Link,
			Author:      author,
			PublishedAt: published,
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
