package db

import (
	"context"
	"time"
)

// Store is the database facade every backend implements.
// Consumers depend on the narrow sub-interfaces (ISP).
type Store interface {
	Pinger
	HashStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based key-value operations.
// HSet reports how many fields were newly created, as Redis HSET does.
// HGetAll on a missing key returns an empty map, not an error.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) (int64, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// Scan returns keys matching a glob pattern where only a trailing '*' is
	// guaranteed to be supported by every backend.
	Scan(ctx context.Context, pattern string) ([]string, error)
}
