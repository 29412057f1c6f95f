package jobmatch

import "errors"

// Sentinel errors returned by New.
var (
	// ErrInvalidWeights is returned when weights could push scores outside 0-100.
	ErrInvalidWeights = errors.New("jobmatch: invalid weights")
	// ErrInvalidThesaurus is returned for thesaurus entries with blank terms.
	ErrInvalidThesaurus = errors.New("jobmatch: invalid thesaurus")
)
