package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"listkit/config"
	"listkit/data"
	"listkit/metrics"
	"listkit/repositories"
	"listkit/services"
	"listkit/widgets"
)

// sortable post attributes exposed on the HTML pages
var postSortAttrs = []string{"title", "feed_name", "published_at"}

// PostsPageHandler renders the post grid page.
func PostsPageHandler(repo *repositories.PostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.GetConfig().Widgets
		query := c.Request.URL.Query()

		pg := data.ParsePagination("/posts", query)
		if cfg.DefaultPageSize > 0 && query.Get(pg.PageSizeParam) == "" {
			pg.PageSize = cfg.DefaultPageSize
		}
		if cfg.MaxPageSize > 0 && pg.PageSize > cfg.MaxPageSize {
			pg.PageSize = cfg.MaxPageSize
		}
		srt := data.ParseSort("/posts", query, postSortAttrs...)
		srt.DefaultOrders = []data.AttributeOrder{{Name: "published_at", Direction: data.Desc}}

		provider := data.NewMongoProvider(repo.Collection(),
			data.WithMongoPagination(pg),
			data.WithMongoSort(srt),
		)

		grid := widgets.NewGridView(provider).
			WithFramework(widgets.Framework(cfg.Framework)).
			WithLayout("{summary}\n{items}\n{pager}").
			WithCaption("Latest posts").
			WithColumns(
				widgets.SerialColumn{},
				widgets.DataColumn{Attribute: "title", Value: postTitleLink},
				widgets.DataColumn{Attribute: "feed_name", Label: "Feed"},
				widgets.DataColumn{Attribute: "author"},
				widgets.DataColumn{Attribute: "published_at", Label: "Published"},
			)

		renderWidgetPage(c, "grid", "Posts", func() (string, error) {
			return grid.Render(c.Request.Context())
		})
	}
}

// FeedsPageHandler renders the configured feeds as a list view backed by
// an in-memory provider.
func FeedsPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.GetConfig()
		query := c.Request.URL.Query()

		records := make([]any, 0, len(cfg.Feeds))
		for _, f := range cfg.Feeds {
			records = append(records, map[string]any{
				"name":    f.Name,
				"url":     f.URL,
				"rss_url": f.RSSURL,
			})
		}

		pg := data.ParsePagination("/feeds", query)
		srt := data.ParseSort("/feeds", query, "name")
		provider := data.NewSliceProvider(records,
			data.WithPagination(pg),
			data.WithSort(srt),
			data.WithKeyField("rss_url"),
		)

		list := widgets.NewListView(provider).
			WithFramework(widgets.Framework(cfg.Widgets.Framework)).
			WithLayout("{summary}\n{sorter}\n{items}\n{pager}").
			WithItemRenderer(feedItem).
			WithItemOptions(widgets.Options{Class: "feed"}).
			WithEmptyText("No feeds configured.")

		renderWidgetPage(c, "list", "Feeds", func() (string, error) {
			return list.Render(c.Request.Context())
		})
	}
}

// renderWidgetPage runs one widget render pass with metrics and error
// handling, then wraps the output in the page chrome.
func renderWidgetPage(c *gin.Context, widget, title string, render func() (string, error)) {
	start := time.Now()
	body, err := render()
	metrics.WidgetRenderDuration.WithLabelValues(widget).Observe(time.Since(start).Seconds())
	if err != nil {
		var cfgErr *widgets.ConfigError
		if errors.As(err, &cfgErr) {
			metrics.WidgetRenders.WithLabelValues(widget, "config_error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": cfgErr.Error()})
			return
		}
		metrics.WidgetRenders.WithLabelValues(widget, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.WidgetRenders.WithLabelValues(widget, "ok").Inc()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(renderPage(title, body)))
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List posts with pagination, newest first
// @Tags         posts
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Param        feed       query  string  false  "Feed name filter"
// @Produce      json
// @Success      200  {object}  dto.Pagination[dto.PostDTO]
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListPostsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
		in.FeedName = c.Query("feed")

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Description  Get a single post by ObjectID
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		post, err := svc.GetByID(c.Request.Context(), idStr)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}
