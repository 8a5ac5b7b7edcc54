package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WidgetRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_renders_total",
			Help: "The total number of widget render passes",
		},
		[]string{"widget", "status"},
	)

	WidgetRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "widget_render_duration_seconds",
			Help:    "Duration of widget render passes, including provider queries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"widget"},
	)

	PostsSeeded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posts_seeded_total",
			Help: "The total number of posts upserted by the seeder",
		},
		[]string{"feed", "status"},
	)
)
