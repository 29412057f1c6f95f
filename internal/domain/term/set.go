package term

import "slices"

// Set is an insertion-ordered, de-duplicated list of terms (immutable value object).
type Set struct {
	terms []string
	index map[string]struct{}
}

// NewSet builds the term set of normalized text: keywords followed by bigrams,
// first occurrence wins.
func NewSet(normalized string) Set {
	var b Builder
	for _, t := range Keywords(normalized) {
		b.Add(t)
	}
	for _, t := range Bigrams(normalized) {
		b.Add(t)
	}
	return b.Set()
}

// FromTerms builds a Set from terms in order, dropping duplicates.
func FromTerms(terms []string) Set {
	var b Builder
	for _, t := range terms {
		b.Add(t)
	}
	return b.Set()
}

// Terms returns a copy of the terms in insertion order.
func (s Set) Terms() []string { return slices.Clone(s.terms) }

// Len returns the number of distinct terms.
func (s Set) Len() int { return len(s.terms) }

// Contains reports whether t is in the set.
func (s Set) Contains(t string) bool {
	_, ok := s.index[t]
	return ok
}

// Head returns a copy of at most the first n terms.
func (s Set) Head(n int) []string {
	n = max(0, min(n, len(s.terms)))
	return slices.Clone(s.terms[:n])
}

// Builder accumulates terms into a Set. The zero value is ready to use.
type Builder struct {
	terms []string
	index map[string]struct{}
}

// Add appends t unless it is already present. Reports whether t was added.
func (b *Builder) Add(t string) bool {
	if b.index == nil {
		b.index = make(map[string]struct{})
	}
	if _, ok := b.index[t]; ok {
		return false
	}
	b.index[t] = struct{}{}
	b.terms = append(b.terms, t)
	return true
}

// Len returns the number of terms added so far.
func (b *Builder) Len() int { return len(b.terms) }

// Set freezes the builder contents. The builder must not be used afterwards.
func (b *Builder) Set() Set {
	idx := b.index
	if idx == nil {
		idx = map[string]struct{}{}
	}
	return Set{terms: b.terms, index: idx}
}
