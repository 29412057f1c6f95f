package resume

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kailas-cloud/jobmatch/internal/db"
	"github.com/kailas-cloud/jobmatch/internal/db/sqlite"
	"github.com/kailas-cloud/jobmatch/internal/domain"
	domresume "github.com/kailas-cloud/jobmatch/internal/domain/resume"
)

var longText = strings.Repeat("Senior Go engineer with Kubernetes and AWS experience. ", 3)

func sampleResume(t *testing.T, id string, at time.Time) domresume.Resume {
	t.Helper()
	r, err := domresume.New(id, "cv.pdf", longText, at, domresume.DefaultLimits())
	if err != nil {
		t.Fatalf("domresume.New: %v", err)
	}
	return r
}

func TestSave_Created(t *testing.T) {
	var gotKey string
	var gotFields map[string]string
	s := &mockStore{
		hsetFn: func(_ context.Context, key string, fields map[string]string) (int64, error) {
			gotKey, gotFields = key, fields
			return int64(len(fields)), nil
		},
	}
	repo := New(s, "jobmatch:")
	res := sampleResume(t, "r1", time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC))

	created, err := repo.Save(context.Background(), &res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}
	if gotKey != "jobmatch:resume:r1" {
		t.Errorf("key = %q", gotKey)
	}
	if gotFields[fieldFileName] != "cv.pdf" || gotFields[fieldUploadedAt] != "2026-01-02T03:04:05.000000006Z" {
		t.Errorf("fields = %v", gotFields)
	}
}

func TestSave_ReplacesInPlace(t *testing.T) {
	s := &mockStore{
		hsetFn: func(context.Context, string, map[string]string) (int64, error) {
			return 0, nil // every field already existed
		},
		delFn: func(context.Context, string) error {
			t.Error("Save must not delete the previous hash")
			return nil
		},
	}
	res := sampleResume(t, "r1", time.Now())
	created, err := New(s, "").Save(context.Background(), &res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false")
	}
}

func TestSave_FailedReplaceKeepsPrevious(t *testing.T) {
	old := sampleResume(t, "x", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	hashes := map[string]map[string]string{"p:resume:x": buildHashFields(&old)}
	s := &mockStore{
		hsetFn: func(context.Context, string, map[string]string) (int64, error) {
			return 0, errors.New("conn reset")
		},
		hgetAllFn: func(_ context.Context, key string) (map[string]string, error) {
			return hashes[key], nil
		},
		delFn: func(_ context.Context, key string) error {
			delete(hashes, key)
			return nil
		},
		existsFn: func(_ context.Context, key string) (bool, error) {
			_, ok := hashes[key]
			return ok, nil
		},
	}
	repo := New(s, "p:")

	replacement := sampleResume(t, "x", time.Now())
	if _, err := repo.Save(context.Background(), &replacement); err == nil {
		t.Fatal("expected save error")
	}

	got, err := repo.Get(context.Background(), "x")
	if err != nil {
		t.Fatalf("Get after failed replace: %v", err)
	}
	if !got.UploadedAt().Equal(old.UploadedAt()) {
		t.Errorf("UploadedAt = %v, want %v", got.UploadedAt(), old.UploadedAt())
	}
}

func TestSave_StoreError(t *testing.T) {
	s := &mockStore{
		hsetFn: func(context.Context, string, map[string]string) (int64, error) {
			return 0, &db.Error{Op: db.OpHSet, Err: errors.New("boom")}
		},
	}
	res := sampleResume(t, "r1", time.Now())
	_, err := New(s, "").Save(context.Background(), &res)
	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected wrapped db.Error, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := New(&mockStore{}, "").Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestGet_BadTimestamp(t *testing.T) {
	s := &mockStore{
		hgetAllFn: func(context.Context, string) (map[string]string, error) {
			return map[string]string{fieldText: "x", fieldUploadedAt: "yesterday"}, nil
		},
	}
	if _, err := New(s, "").Get(context.Background(), "r1"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDelete_NotFound(t *testing.T) {
	err := New(&mockStore{}, "").Delete(context.Background(), "missing")
	if !errors.Is(err, domain.ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestList_SkipsVanishedKeys(t *testing.T) {
	s := &mockStore{
		scanFn: func(_ context.Context, pattern string) ([]string, error) {
			if pattern != "p:resume:*" {
				t.Errorf("pattern = %q", pattern)
			}
			return []string{"p:resume:a", "p:resume:gone"}, nil
		},
		hgetAllFn: func(_ context.Context, key string) (map[string]string, error) {
			if key == "p:resume:gone" {
				return map[string]string{}, nil
			}
			return map[string]string{fieldFileName: "a.pdf", fieldText: "t"}, nil
		},
	}
	got, err := New(s, "p:").List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "a" {
		t.Errorf("List = %+v", got)
	}
}

func TestRepo_SQLiteRoundTrip(t *testing.T) {
	store, err := sqlite.NewStore(sqlite.Config{Path: filepath.Join(t.TempDir(), "resumes.db")})
	if err != nil {
		t.Fatalf("sqlite.NewStore: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	repo := New(store, "jobmatch:")
	older := sampleResume(t, "older", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleResume(t, "newer", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	for _, r := range []*domresume.Resume{&older, &newer} {
		created, err := repo.Save(ctx, r)
		if err != nil || !created {
			t.Fatalf("Save(%s) = %v, %v", r.ID(), created, err)
		}
	}
	created, err := repo.Save(ctx, &older)
	if err != nil || created {
		t.Fatalf("second Save = %v, %v; want false, nil", created, err)
	}

	got, err := repo.Get(ctx, "older")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Text() != older.Text() || !got.UploadedAt().Equal(older.UploadedAt()) {
		t.Errorf("Get = %+v", got)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d resumes, want 2", len(list))
	}
	if list[0].ID() != "newer" || list[1].ID() != "older" {
		t.Errorf("List order = %s, %s", list[0].ID(), list[1].ID())
	}

	if err := repo.Delete(ctx, "older"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "older"); !errors.Is(err, domain.ErrResumeNotFound) {
		t.Errorf("Get after Delete: %v", err)
	}
}

func TestRepo_SQLiteConcurrentSaveCreatesOnce(t *testing.T) {
	store, err := sqlite.NewStore(sqlite.Config{Path: filepath.Join(t.TempDir(), "resumes.db")})
	if err != nil {
		t.Fatalf("sqlite.NewStore: %v", err)
	}
	defer store.Close()

	repo := New(store, "jobmatch:")
	res := sampleResume(t, "same", time.Now())

	const writers = 8
	var created atomic.Int32
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.Save(context.Background(), &res)
			if err != nil {
				t.Errorf("Save: %v", err)
				return
			}
			if ok {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := created.Load(); got != 1 {
		t.Errorf("created reported %d times, want 1", got)
	}
}
