// Package match compares resume and job term sets and turns the comparison
// into a bounded 0-100 score.
package match

import (
	"strings"

	"github.com/kailas-cloud/jobmatch/internal/domain/term"
)

// MinPartialLen is the length both terms must exceed for a substring match.
const MinPartialLen = 3

// Relator decides whether two terms are synonyms. thesaurus.Thesaurus implements it.
type Relator interface {
	Related(a, b string) bool
}

// Signals holds the raw comparison output the scorer consumes.
type Signals struct {
	// Exact lists resume terms present verbatim in the job term set, in resume order.
	Exact []string
	// Enriched starts with Exact and grows with synonym and partial matches
	// in discovery order.
	Enriched []string
	// SynonymMatches counts (resume, job) pairs accepted through the thesaurus.
	SynonymMatches int
	// Jaccard is the word-level overlap of the two normalized texts.
	Jaccard float64
}

// Compare matches every resume term against every job term.
// A pair counts when the terms are equal, related through syn, or when one
// contains the other and both are longer than MinPartialLen.
func Compare(resume, job term.Set, resumeWords, jobWords []string, syn Relator) Signals {
	resumeTerms := resume.Terms()
	jobTerms := job.Terms()

	var exact []string
	var enriched term.Builder
	for _, r := range resumeTerms {
		if job.Contains(r) {
			exact = append(exact, r)
			enriched.Add(r)
		}
	}

	synonyms := 0
	for _, r := range resumeTerms {
		for _, j := range jobTerms {
			switch {
			case r == j:
				enriched.Add(r)
			case syn != nil && syn.Related(r, j):
				enriched.Add(r)
				synonyms++
			case partial(r, j):
				enriched.Add(r)
			}
		}
	}

	return Signals{
		Exact:          exact,
		Enriched:       enriched.Set().Terms(),
		SynonymMatches: synonyms,
		Jaccard:        Jaccard(resumeWords, jobWords),
	}
}

func partial(a, b string) bool {
	if len(a) <= MinPartialLen || len(b) <= MinPartialLen {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Jaccard returns |A∩B| / |A∪B| over the distinct non-empty words of a and b.
// Two empty inputs give 0.
func Jaccard(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	inter := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return m
}
