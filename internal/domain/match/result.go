package match

import "slices"

// List limits applied to a Result.
const (
	MaxMatched  = 20
	MaxKeywords = 30
)

// Breakdown exposes the intermediate values behind a score.
type Breakdown struct {
	TermScore       float64
	SynonymScore    float64
	Jaccard         float64
	ExactMatches    int
	EnrichedMatches int
	SynonymMatches  int
	JobTerms        int
}

func newBreakdown(sig Signals, jobTerms int) Breakdown {
	denom := float64(max(jobTerms, 1))
	return Breakdown{
		TermScore:       float64(len(sig.Exact)) / denom,
		SynonymScore:    float64(len(sig.Enriched)) / denom,
		Jaccard:         sig.Jaccard,
		ExactMatches:    len(sig.Exact),
		EnrichedMatches: len(sig.Enriched),
		SynonymMatches:  sig.SynonymMatches,
		JobTerms:        jobTerms,
	}
}

// Result is the outcome of one resume/job comparison (immutable value object).
type Result struct {
	score          int
	matched        []string
	resumeKeywords []string
	jobKeywords    []string
	breakdown      Breakdown
}

// NewResult builds a Result, truncating lists to their limits.
func NewResult(score int, matched, resumeKeywords, jobKeywords []string, b Breakdown) Result {
	return Result{
		score:          score,
		matched:        head(matched, MaxMatched),
		resumeKeywords: head(resumeKeywords, MaxKeywords),
		jobKeywords:    head(jobKeywords, MaxKeywords),
		breakdown:      b,
	}
}

func head(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Score returns the 0-100 match score.
func (r *Result) Score() int { return r.score }

// Matched returns matched resume terms in discovery order.
func (r *Result) Matched() []string { return slices.Clone(r.matched) }

// ResumeKeywords returns the leading resume terms.
func (r *Result) ResumeKeywords() []string { return slices.Clone(r.resumeKeywords) }

// JobKeywords returns the leading job terms.
func (r *Result) JobKeywords() []string { return slices.Clone(r.jobKeywords) }

// Breakdown returns the scoring intermediates.
func (r *Result) Breakdown() Breakdown { return r.breakdown }
