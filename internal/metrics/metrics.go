// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TasteUpdates counts incremental taste updates by outcome
	// ("applied", "below_threshold", "no_vectors", "user_not_found", "no_taste_vector", "error").
	TasteUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelfeed_taste_updates_total",
			Help: "Total number of incremental taste profile updates by outcome",
		},
		[]string{"outcome"},
	)

	// FeedRequests counts feed requests by ranking mode ("similarity", "popularity").
	FeedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelfeed_feed_requests_total",
			Help: "Total number of feed requests by ranking mode",
		},
		[]string{"ranking"},
	)

	// FeedRankingFailures counts feeds that fell back to popularity because ranking failed.
	FeedRankingFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelfeed_feed_ranking_failures_total",
			Help: "Total number of feed requests where similarity ranking failed",
		},
	)

	// LikeToggles counts like toggles by resulting state ("liked", "unliked").
	LikeToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelfeed_like_toggles_total",
			Help: "Total number of like toggles by resulting state",
		},
		[]string{"state"},
	)

	// PostsCreated counts successfully created posts.
	PostsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelfeed_posts_created_total",
			Help: "Total number of posts created",
		},
	)

	// BreakerStateChanges counts circuit breaker transitions.
	// Labels:
	//   - name: breaker name ("embedder", "blob_store")
	//   - to: new state ("closed", "half-open", "open")
	BreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelfeed_circuit_breaker_state_changes_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "to"},
	)
)
