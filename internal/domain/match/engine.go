package match

import (
	"github.com/kailas-cloud/jobmatch/internal/domain/term"
	"github.com/kailas-cloud/jobmatch/internal/domain/text"
)

// Engine runs the full pipeline: normalize, extract terms, compare, score.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	synonyms Relator
	weights  Weights
}

// NewEngine creates an Engine. synonyms may be nil to disable synonym matching.
func NewEngine(synonyms Relator, weights Weights) *Engine {
	return &Engine{synonyms: synonyms, weights: weights}
}

// Weights returns the scoring weights in use.
func (e *Engine) Weights() Weights { return e.weights }

// Match scores resumeText against jobText. Any input, including empty text,
// yields a valid Result.
func (e *Engine) Match(resumeText, jobText string) Result {
	resumeNorm := text.Normalize(resumeText)
	jobNorm := text.Normalize(jobText)

	resumeSet := term.NewSet(resumeNorm)
	jobSet := term.NewSet(jobNorm)

	sig := Compare(resumeSet, jobSet, text.Words(resumeNorm), text.Words(jobNorm), e.synonyms)
	b := newBreakdown(sig, jobSet.Len())
	score := e.weights.Score(jobSet.Len(), b.ExactMatches, b.EnrichedMatches, b.Jaccard)

	return NewResult(score, sig.Enriched, resumeSet.Terms(), jobSet.Terms(), b)
}
