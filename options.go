package jobmatch

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Matcher.
type Option interface {
	apply(*matcherConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*matcherConfig)

func (f optionFunc) apply(c *matcherConfig) { f(c) }

type matcherConfig struct {
	synonyms    []map[string][]string
	thesaurus   map[string][]string
	noThesaurus bool
	weights     Weights

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithSynonyms merges extra entries into the thesaurus.
// Can be passed several times; entries accumulate.
func WithSynonyms(entries map[string][]string) Option {
	return optionFunc(func(c *matcherConfig) {
		c.synonyms = append(c.synonyms, entries)
	})
}

// WithThesaurus replaces the built-in thesaurus. An empty map disables
// synonym matching entirely.
func WithThesaurus(entries map[string][]string) Option {
	return optionFunc(func(c *matcherConfig) {
		c.thesaurus = entries
		c.noThesaurus = len(entries) == 0
	})
}

// WithWeights overrides the scoring weights. Defaults: DefaultWeights().
func WithWeights(w Weights) Option {
	return optionFunc(func(c *matcherConfig) {
		c.weights = w
	})
}

// WithLogger enables structured logging of match results.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *matcherConfig) {
		c.logger = l
	})
}

// WithPrometheus registers matcher metrics (match counts, durations and
// scores) on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *matcherConfig) {
		c.metricsReg = reg
	})
}
