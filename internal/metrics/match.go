package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jobmatch"

// Match Prometheus metrics.
var (
	MatchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_requests_total",
			Help:      "Total match computations by kind and outcome",
		},
		[]string{"kind", "status"}, // kind: direct/stored; status: ok or error reason
	)

	MatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_duration_seconds",
			Help:      "Match computation duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"kind"},
	)

	MatchScore = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_score",
			Help:      "Distribution of match scores (0-100)",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		},
		[]string{"kind"},
	)

	MatchSynonymMatches = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_synonym_matches",
			Help:      "Synonym pairs accepted per match",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		},
		[]string{"kind"},
	)
)

var matchMetricsRegistered bool

// RegisterMatchMetrics registers match metrics. Must be called once from main.
func RegisterMatchMetrics() {
	if matchMetricsRegistered {
		return
	}
	prometheus.MustRegister(MatchRequestsTotal)
	prometheus.MustRegister(MatchDuration)
	prometheus.MustRegister(MatchScore)
	prometheus.MustRegister(MatchSynonymMatches)
	matchMetricsRegistered = true
}

// MatchRecorder feeds match outcomes into the package collectors.
type MatchRecorder struct{}

// ObserveMatch records a successful computation.
func (MatchRecorder) ObserveMatch(kind string, score, synonymMatches int, elapsed time.Duration) {
	MatchRequestsTotal.WithLabelValues(kind, "ok").Inc()
	MatchDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	MatchScore.WithLabelValues(kind).Observe(float64(score))
	MatchSynonymMatches.WithLabelValues(kind).Observe(float64(synonymMatches))
}

// ObserveError records a rejected or failed computation.
func (MatchRecorder) ObserveError(kind, reason string) {
	MatchRequestsTotal.WithLabelValues(kind, reason).Inc()
}
