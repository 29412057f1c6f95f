package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domresume "github.com/kailas-cloud/jobmatch/internal/domain/resume"
)

// Service handles stored resume CRUD.
type Service struct {
	repo   Repository
	limits domresume.Limits
	now    func() time.Time
	newID  func() string
}

// New creates a resume service.
func New(repo Repository) *Service {
	return &Service{
		repo:   repo,
		limits: domresume.DefaultLimits(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithLimits overrides resume limits. Zero values keep the defaults.
func (s *Service) WithLimits(limits domresume.Limits) *Service {
	if limits.MinTextChars > 0 {
		s.limits.MinTextChars = limits.MinTextChars
	}
	if limits.MaxFileBytes > 0 {
		s.limits.MaxFileBytes = limits.MaxFileBytes
	}
	return s
}

// WithClock replaces the upload timestamp source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Limits returns the effective resume limits.
func (s *Service) Limits() domresume.Limits { return s.limits }

// Create stores a resume under a generated ID.
func (s *Service) Create(ctx context.Context, fileName, text string) (domresume.Resume, error) {
	res, _, err := s.Put(ctx, s.newID(), fileName, text)
	return res, err
}

// Put stores a resume under id, replacing any previous one.
// Returns true if the resume was created.
func (s *Service) Put(ctx context.Context, id, fileName, text string) (domresume.Resume, bool, error) {
	res, err := domresume.New(id, fileName, text, s.now(), s.limits)
	if err != nil {
		return domresume.Resume{}, false, fmt.Errorf("validate resume: %w", err)
	}

	created, err := s.repo.Save(ctx, &res)
	if err != nil {
		return domresume.Resume{}, false, fmt.Errorf("save resume: %w", err)
	}
	return res, created, nil
}

// Get retrieves a resume by ID.
func (s *Service) Get(ctx context.Context, id string) (domresume.Resume, error) {
	res, err := s.repo.Get(ctx, id)
	if err != nil {
		return domresume.Resume{}, fmt.Errorf("get resume: %w", err)
	}
	return res, nil
}

// List returns all stored resumes, newest first.
func (s *Service) List(ctx context.Context) ([]domresume.Resume, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return list, nil
}

// Delete removes a resume.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	return nil
}
