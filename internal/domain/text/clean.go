package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean tidies text extracted from a resume file: NFC composition,
// control characters turned into spaces, whitespace collapsed and trimmed.
func Clean(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
