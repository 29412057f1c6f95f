// Package posting validates that text submitted as a job description is
// plausibly one before it is matched.
package posting

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/jobmatch/internal/domain"
)

// Limits bounds accepted job description length, in characters.
type Limits struct {
	MinChars int
	MaxChars int
}

// DefaultLimits returns the standard job description bounds.
func DefaultLimits() Limits {
	return Limits{MinChars: 100, MaxChars: 50000}
}

// indicators are words at least one of which every job description contains.
var indicators = []string{
	"job", "position", "role", "responsibilities",
	"requirements", "qualifications", "experience", "skills",
}

// Validate checks trimmed text against the limits and the indicator words.
// All failures are reported together; each wraps domain.ErrInvalidJobPosting.
func Validate(text string, limits Limits) error {
	trimmed := strings.TrimSpace(text)
	n := utf8.RuneCountInString(trimmed)

	var errs []error
	if n < limits.MinChars {
		errs = append(errs, fmt.Errorf("%w: %w: %d characters, minimum %d",
			domain.ErrInvalidJobPosting, domain.ErrJobTooShort, n, limits.MinChars))
	}
	if limits.MaxChars > 0 && n > limits.MaxChars {
		errs = append(errs, fmt.Errorf("%w: %w: %d characters, maximum %d",
			domain.ErrInvalidJobPosting, domain.ErrJobTooLong, n, limits.MaxChars))
	}
	if !hasIndicator(trimmed) {
		errs = append(errs, fmt.Errorf("%w: %w", domain.ErrInvalidJobPosting, domain.ErrNotJobPosting))
	}
	return errors.Join(errs...)
}

func hasIndicator(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range indicators {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
