package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// ThesaurusSizer reports how many entries the loaded thesaurus has.
type ThesaurusSizer interface {
	Len() int
}
