package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tagging engine metrics, registered once at process start.
var (
	SuggestionRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tagging_suggestion_requests_total",
		Help: "Total number of tag suggestion runs.",
	})

	TagsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tagging_tags_created_total",
		Help: "Total number of tags created by the auto-tagging engine.",
	})

	BulkTaggedPosts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tagging_bulk_posts_total",
		Help: "Posts processed by bulk auto-tagging, by outcome.",
	}, []string{"outcome"})
)
