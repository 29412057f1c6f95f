package term

import "github.com/kailas-cloud/jobmatch/internal/domain/text"

// Bigrams returns every pair of adjacent words in normalized text,
// joined by a single space. Fewer than two words yields nil.
func Bigrams(normalized string) []string {
	words := text.Words(normalized)
	if len(words) < 2 {
		return nil
	}
	out := make([]string, 0, len(words)-1)
	for i := 0; i < len(words)-1; i++ {
		out = append(out, words[i]+" "+words[i+1])
	}
	return out
}
