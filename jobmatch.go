package jobmatch

import (
	"fmt"
	"sync"
	"time"

	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/domain/thesaurus"
)

// Weights are the scoring constants.
type Weights struct {
	Enriched float64 `json:"enriched"`
	Exact    float64 `json:"exact"`
	Jaccard  float64 `json:"jaccard"`
	Boost    float64 `json:"boost"`
	Scale    float64 `json:"scale"`
	Cap      int     `json:"cap"`
}

// DefaultWeights returns the standard scoring constants.
func DefaultWeights() Weights {
	w := dommatch.DefaultWeights()
	return Weights{
		Enriched: w.Enriched,
		Exact:    w.Exact,
		Jaccard:  w.Jaccard,
		Boost:    w.Boost,
		Scale:    w.Scale,
		Cap:      w.Cap,
	}
}

func (w Weights) toDomain() dommatch.Weights {
	return dommatch.Weights{
		Enriched: w.Enriched,
		Exact:    w.Exact,
		Jaccard:  w.Jaccard,
		Boost:    w.Boost,
		Scale:    w.Scale,
		Cap:      w.Cap,
	}
}

// Breakdown exposes the values behind a score.
type Breakdown struct {
	TermScore       float64 `json:"term_score"`
	SynonymScore    float64 `json:"synonym_score"`
	Jaccard         float64 `json:"jaccard"`
	ExactMatches    int     `json:"exact_matches"`
	EnrichedMatches int     `json:"enriched_matches"`
	SynonymMatches  int     `json:"synonym_matches"`
	JobTerms        int     `json:"job_terms"`
}

// Result is the outcome of one resume/job comparison.
type Result struct {
	Score           int       `json:"match_score"`
	MatchedKeywords []string  `json:"matched_keywords"`
	ResumeKeywords  []string  `json:"resume_keywords"`
	JobKeywords     []string  `json:"job_keywords"`
	Breakdown       Breakdown `json:"breakdown"`
}

// Matcher scores resumes against job descriptions. Safe for concurrent use.
type Matcher struct {
	engine *dommatch.Engine
	obs    *observer
}

// New creates a Matcher with the built-in thesaurus and default weights.
func New(opts ...Option) (*Matcher, error) {
	cfg := &matcherConfig{weights: DefaultWeights()}
	for _, o := range opts {
		o.apply(cfg)
	}

	if err := cfg.weights.toDomain().Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWeights, err)
	}

	thes, err := buildThesaurus(cfg)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var rel dommatch.Relator
	if thes.Len() > 0 {
		rel = thes
	}

	return &Matcher{
		engine: dommatch.NewEngine(rel, cfg.weights.toDomain()),
		obs:    obs,
	}, nil
}

func buildThesaurus(cfg *matcherConfig) (thesaurus.Thesaurus, error) {
	base := thesaurus.Default()
	switch {
	case cfg.noThesaurus:
		base = thesaurus.New(nil)
	case cfg.thesaurus != nil:
		t, err := thesaurus.FromMap(cfg.thesaurus)
		if err != nil {
			return thesaurus.Thesaurus{}, fmt.Errorf("%w: %w", ErrInvalidThesaurus, err)
		}
		base = t
	}

	for _, extra := range cfg.synonyms {
		t, err := thesaurus.FromMap(extra)
		if err != nil {
			return thesaurus.Thesaurus{}, fmt.Errorf("%w: %w", ErrInvalidThesaurus, err)
		}
		base = base.Merge(t)
	}
	return base, nil
}

// Match scores resume against job. Any input, including empty text, yields a Result.
func (m *Matcher) Match(resume, job string) Result {
	start := time.Now()
	r := m.engine.Match(resume, job)
	res := fromDomain(&r)
	m.obs.observe(start, &res)
	return res
}

var defaultMatcher = sync.OnceValue(func() *Matcher {
	m, err := New()
	if err != nil {
		// Defaults are constant; failure here is a programming error.
		panic(err)
	}
	return m
})

// Match scores resume against job with the default Matcher.
func Match(resume, job string) Result {
	return defaultMatcher().Match(resume, job)
}

func fromDomain(r *dommatch.Result) Result {
	b := r.Breakdown()
	return Result{
		Score:           r.Score(),
		MatchedKeywords: r.Matched(),
		ResumeKeywords:  r.ResumeKeywords(),
		JobKeywords:     r.JobKeywords(),
		Breakdown: Breakdown{
			TermScore:       b.TermScore,
			SynonymScore:    b.SynonymScore,
			Jaccard:         b.Jaccard,
			ExactMatches:    b.ExactMatches,
			EnrichedMatches: b.EnrichedMatches,
			SynonymMatches:  b.SynonymMatches,
			JobTerms:        b.JobTerms,
		},
	}
}
