package jobmatch

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// matcherMetrics holds prometheus metrics registered for the Matcher.
type matcherMetrics struct {
	matches  prometheus.Counter
	duration prometheus.Histogram
	scores   prometheus.Histogram
}

func newMatcherMetrics(reg prometheus.Registerer) (*matcherMetrics, error) {
	m := &matcherMetrics{
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jobmatch",
			Subsystem: "lib",
			Name:      "matches_total",
			Help:      "Total resume/job comparisons.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jobmatch",
			Subsystem: "lib",
			Name:      "match_duration_seconds",
			Help:      "Comparison duration in seconds.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jobmatch",
			Subsystem: "lib",
			Name:      "match_score",
			Help:      "Distribution of match scores.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
	}
	if err := registerOrReuse(reg, &m.matches); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.scores); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("jobmatch: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("jobmatch: register metric: %w", err)
	}
	return nil
}

// observer provides logging and metrics for matches.
type observer struct {
	logger  *slog.Logger
	metrics *matcherMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *matcherMetrics
	if reg != nil {
		var err error
		m, err = newMatcherMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

func (o *observer) observe(start time.Time, res *Result) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		o.metrics.matches.Inc()
		o.metrics.duration.Observe(dur.Seconds())
		o.metrics.scores.Observe(float64(res.Score))
	}

	if o.logger != nil {
		o.logger.Debug("match computed",
			"score", res.Score,
			"job_terms", res.Breakdown.JobTerms,
			"exact_matches", res.Breakdown.ExactMatches,
			"enriched_matches", res.Breakdown.EnrichedMatches,
			"synonym_matches", res.Breakdown.SynonymMatches,
			"duration", dur,
		)
	}
}
