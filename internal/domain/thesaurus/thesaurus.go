// Package thesaurus holds the job-domain synonym table used for enriched matching.
package thesaurus

import (
	"cmp"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Thesaurus maps a term to its related terms. Lookups are bidirectional:
// a pair is related when either side lists the other (immutable value object).
type Thesaurus struct {
	entries map[string][]string
	related map[string]map[string]struct{}
}

// Pair is a directed (term, synonym) entry.
type Pair struct {
	Term    string
	Synonym string
}

// New builds a Thesaurus from a term -> synonyms table. The table is copied.
func New(entries map[string][]string) Thesaurus {
	t := Thesaurus{
		entries: make(map[string][]string, len(entries)),
		related: make(map[string]map[string]struct{}, len(entries)*2),
	}
	for k, vs := range entries {
		t.entries[k] = slices.Clone(vs)
		for _, v := range vs {
			t.link(k, v)
			t.link(v, k)
		}
	}
	return t
}

func (t Thesaurus) link(a, b string) {
	m, ok := t.related[a]
	if !ok {
		m = make(map[string]struct{})
		t.related[a] = m
	}
	m[b] = struct{}{}
}

// Related reports whether b is listed under a or a is listed under b.
func (t Thesaurus) Related(a, b string) bool {
	_, ok := t.related[a][b]
	return ok
}

// Synonyms returns a copy of the terms listed under term.
func (t Thesaurus) Synonyms(term string) []string {
	return slices.Clone(t.entries[term])
}

// Len returns the number of head terms.
func (t Thesaurus) Len() int { return len(t.entries) }

// Entries returns a deep copy of the table.
func (t Thesaurus) Entries() map[string][]string {
	out := make(map[string][]string, len(t.entries))
	for k, vs := range t.entries {
		out[k] = slices.Clone(vs)
	}
	return out
}

// Asymmetries lists entries whose synonym does not list the term back,
// either because the synonym has no entry or because its entry omits the term.
// Self references are ignored. Sorted by term, then synonym.
func (t Thesaurus) Asymmetries() []Pair {
	var out []Pair
	for k, vs := range t.entries {
		for _, v := range vs {
			if v == k {
				continue
			}
			back, ok := t.entries[v]
			if !ok || !slices.Contains(back, k) {
				out = append(out, Pair{Term: k, Synonym: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Pair) int {
		if c := cmp.Compare(a.Term, b.Term); c != 0 {
			return c
		}
		return cmp.Compare(a.Synonym, b.Synonym)
	})
	return out
}

// Merge returns a new Thesaurus with other's entries added to t.
// Synonym lists of shared terms are unioned, keeping t's order first.
func (t Thesaurus) Merge(other Thesaurus) Thesaurus {
	merged := t.Entries()
	keys := slices.Sorted(maps.Keys(other.entries))
	for _, k := range keys {
		for _, v := range other.entries[k] {
			if !slices.Contains(merged[k], v) {
				merged[k] = append(merged[k], v)
			}
		}
	}
	return New(merged)
}

// Parse reads a YAML mapping of term to synonym list.
func Parse(data []byte) (Thesaurus, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Thesaurus{}, fmt.Errorf("parse thesaurus: %w", err)
	}
	return FromMap(raw)
}

// FromMap builds a Thesaurus from user-supplied entries.
// Terms and synonyms are trimmed and lowercased; blank ones are rejected.
func FromMap(raw map[string][]string) (Thesaurus, error) {
	entries := make(map[string][]string, len(raw))
	for k, vs := range raw {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			return Thesaurus{}, fmt.Errorf("thesaurus: empty term")
		}
		for _, v := range vs {
			syn := strings.ToLower(strings.TrimSpace(v))
			if syn == "" {
				return Thesaurus{}, fmt.Errorf("thesaurus: empty synonym for %q", key)
			}
			if !slices.Contains(entries[key], syn) {
				entries[key] = append(entries[key], syn)
			}
		}
	}
	return New(entries), nil
}

// Load reads and parses a YAML thesaurus file.
func Load(path string) (Thesaurus, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Thesaurus{}, fmt.Errorf("read thesaurus %s: %w", path, err)
	}
	return Parse(data)
}
