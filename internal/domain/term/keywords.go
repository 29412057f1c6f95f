// Package term extracts weighted keywords and bigrams from normalized text
// and keeps them as ordered, de-duplicated term sets.
package term

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kailas-cloud/jobmatch/internal/domain/text"
)

const (
	// MaxKeywords caps the keywords kept per text.
	MaxKeywords = 60
	// PhraseWeight is added once for each important phrase found in the text.
	PhraseWeight = 3
)

// importantPhrases are multi-word job-domain phrases boosted during extraction.
// Order matters: it decides ties between equally weighted phrases.
var importantPhrases = []string{
	"product manager", "product owner", "project manager", "scrum master",
	"software engineer", "data analyst", "business analyst",
	"user experience", "user interface",
	"machine learning", "artificial intelligence",
	"project management", "product management",
	"agile development", "software development", "web development",
	"full stack", "front end", "back end",
	"data science", "cloud computing",
}

// ImportantPhrases returns a copy of the boosted phrase list.
func ImportantPhrases() []string {
	return slices.Clone(importantPhrases)
}

type weighted struct {
	term   string
	weight int
}

// Keywords returns up to MaxKeywords terms of normalized text ordered by
// descending weight. Phrases found as substrings weigh PhraseWeight, each
// word occurrence adds one. Equal weights keep first-insertion order:
// phrases first in list order, then words in text order.
func Keywords(normalized string) []string {
	index := make(map[string]int)
	var entries []weighted
	add := func(t string, w int) {
		if i, ok := index[t]; ok {
			entries[i].weight += w
			return
		}
		index[t] = len(entries)
		entries = append(entries, weighted{term: t, weight: w})
	}

	for _, p := range importantPhrases {
		if strings.Contains(normalized, p) {
			add(p, PhraseWeight)
		}
	}
	for _, w := range text.Words(normalized) {
		if len(w) >= text.MinTokenLen {
			add(w, 1)
		}
	}

	slices.SortStableFunc(entries, func(a, b weighted) int {
		return cmp.Compare(b.weight, a.weight)
	})

	n := min(len(entries), MaxKeywords)
	out := make([]string, n)
	for i := range n {
		out[i] = entries[i].term
	}
	return out
}
