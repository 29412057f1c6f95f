package resume

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	domresume "github.com/kailas-cloud/jobmatch/internal/domain/resume"
)

// store is the consumer interface for resumes (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) (int64, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/resume.Repository on a hash store.
type Repo struct {
	store  store
	prefix string
}

// New creates a resume repository. Keys are "<keyPrefix>resume:<id>".
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix + "resume:"}
}

func (r *Repo) key(id string) string { return r.prefix + id }

// Save stores a resume, overwriting any previous one under the same ID in
// place. Returns true if the resume was created.
func (r *Repo) Save(ctx context.Context, res *domresume.Resume) (bool, error) {
	key := r.key(res.ID())
	fields := buildHashFields(res)

	added, err := r.store.HSet(ctx, key, fields)
	if err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}
	// Every field is new only when the hash did not exist.
	return added == int64(len(fields)), nil
}

// Get returns the resume stored under id.
func (r *Repo) Get(ctx context.Context, id string) (domresume.Resume, error) {
	key := r.key(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domresume.Resume{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return domresume.Resume{}, fmt.Errorf("resume %q: %w", id, domain.ErrResumeNotFound)
	}
	res, err := parseHashFields(id, m)
	if err != nil {
		return domresume.Resume{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return res, nil
}

// Delete removes the resume stored under id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.key(id)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("resume %q: %w", id, domain.ErrResumeNotFound)
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// List returns every stored resume, newest upload first.
func (r *Repo) List(ctx context.Context) ([]domresume.Resume, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan resumes: %w", err)
	}

	out := make([]domresume.Resume, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, r.prefix)
		m, err := r.store.HGetAll(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("hgetall %s: %w", key, err)
		}
		if len(m) == 0 {
			// Deleted between SCAN and HGETALL.
			continue
		}
		res, err := parseHashFields(id, m)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		out = append(out, res)
	}

	slices.SortFunc(out, func(a, b domresume.Resume) int {
		if c := b.UploadedAt().Compare(a.UploadedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})
	return out, nil
}
