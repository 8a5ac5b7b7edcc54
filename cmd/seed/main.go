// Command seed pulls the configured RSS feeds into MongoDB so the demo
// pages have data to render.
package main

import (
	"context"

	"listkit/config"
	"listkit/db"
	"listkit/feeder"
	"listkit/logging"
	"listkit/metrics"
	"listkit/models"
	"listkit/repositories"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logging.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logging.Log.Errorf("failed to initialize MongoDB: %v", err)
		return
	}

	limit := cfg.FeedFetchLimit
	if limit <= 0 {
		limit = 20
	}

	postRepo := repositories.NewPostRepository(db.Database())
	for _, feed := range cfg.Feeds {
		items, err := feeder.FetchRssFeeds(ctx, feed.RSSURL, limit)
		if err != nil {
			logging.Log.Errorf("failed to fetch feed %s: %v", feed.Name, err)
			metrics.PostsSeeded.WithLabelValues(feed.Name, "fetch_error").Inc()
			continue
		}

		for _, item := range items {
			p := &models.Post{
				FeedName:    feed.Name,
				Title:       item.Title,
				Link:        item.Link,
				Author:      item.Author,
				PublishedAt: item.PublishedAt,
			}
			if _, err := postRepo.UpsertByLink(ctx, p); err != nil {
				logging.Log.Errorf("failed to upsert post (feed=%s, title=%s): %v", feed.Name, item.Title, err)
				metrics.PostsSeeded.WithLabelValues(feed.Name, "error").Inc()
				continue
			}
			metrics.PostsSeeded.WithLabelValues(feed.Name, "ok").Inc()
			logging.DebugWithFields("upserted post", logging.Fields{
				"feed":  feed.Name,
				"title": item.Title,
			})
		}
		logging.InfoWithFields("seeded feed", logging.Fields{
			"feed":  feed.Name,
			"items": len(items),
		})
	}
}
