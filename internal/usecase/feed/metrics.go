package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MutationsTotal counts article and comment mutations.
	// Labels: resource (article/comment), outcome
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_mutations_total",
		Help: "Total number of article and comment mutations by resource and outcome",
	}, []string{"resource", "outcome"})

	// SearchQueriesTotal counts feed requests with and without a query.
	SearchQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_search_queries_total",
		Help: "Total number of feed requests by whether a search query was given",
	}, []string{"filtered"})
)

func recordMutation(resource string, o Outcome) {
	MutationsTotal.WithLabelValues(resource, o.String()).Inc()
}
