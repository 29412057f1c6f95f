// Package text turns free-form resume and job text into the normalized
// token stream the matcher works on.
package text

import "strings"

// MinTokenLen is the shortest token kept by Normalize.
const MinTokenLen = 3

// Normalize lowercases s, turns every non-word character into a separator,
// collapses whitespace and drops short tokens and stop words.
// Word characters are ASCII letters, digits and underscore; everything else,
// including non-ASCII letters, separates tokens.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if isWordRune(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}

	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, w := range fields {
		if len(w) < MinTokenLen || IsStopWord(w) {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// Words splits normalized text into tokens, ignoring empty ones.
func Words(normalized string) []string {
	return strings.Fields(normalized)
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return r == '_'
	}
}
