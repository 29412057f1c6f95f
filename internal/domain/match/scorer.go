package match

import (
	"fmt"
	"math"
)

// Default scoring constants. Changing them changes every score.
const (
	DefaultEnrichedWeight = 0.7
	DefaultExactWeight    = 0.2
	DefaultJaccardWeight  = 0.1
	DefaultBoost          = 0.1
	DefaultScale          = 1.5
	DefaultCap            = 100
)

// Weights combines match signals into a score.
type Weights struct {
	Enriched float64
	Exact    float64
	Jaccard  float64
	// Boost is added once when at least one enriched match exists.
	Boost float64
	// Scale stretches the weighted sum before it is mapped to 0-100.
	Scale float64
	Cap   int
}

// DefaultWeights returns the production scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Enriched: DefaultEnrichedWeight,
		Exact:    DefaultExactWeight,
		Jaccard:  DefaultJaccardWeight,
		Boost:    DefaultBoost,
		Scale:    DefaultScale,
		Cap:      DefaultCap,
	}
}

// Validate checks that the weights keep scores inside 0-100.
func (w Weights) Validate() error {
	if w.Enriched < 0 || w.Exact < 0 || w.Jaccard < 0 || w.Boost < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	if w.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", w.Scale)
	}
	if w.Cap < 1 || w.Cap > 100 {
		return fmt.Errorf("cap must be between 1 and 100, got %d", w.Cap)
	}
	return nil
}

// Score maps match counts to an integer in [0, Cap].
// Coverage ratios are taken against the job term count, floored at one.
func (w Weights) Score(jobTerms, exact, enriched int, jaccard float64) int {
	denom := float64(max(jobTerms, 1))
	termScore := float64(exact) / denom
	synScore := float64(enriched) / denom

	base := w.Enriched*synScore + w.Exact*termScore + w.Jaccard*jaccard
	if enriched > 0 {
		base += w.Boost
	}

	// Half-up rounding; the operand is never negative.
	scaled := math.Floor(base*w.Scale*100 + 0.5)
	return max(0, min(w.Cap, int(scaled)))
}
