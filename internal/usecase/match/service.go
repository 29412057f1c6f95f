package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/domain/posting"
	"github.com/kailas-cloud/jobmatch/internal/logger"
)

// Recorder kinds.
const (
	KindDirect = "direct"
	KindStored = "stored"
)

// Service computes match scores for raw and stored resumes.
type Service struct {
	engine      Matcher
	resumes     ResumeReader
	recorder    Recorder
	validateJob bool
	jobLimits   posting.Limits
	now         func() time.Time
}

// New creates a match service. resumes may be nil when stored matching is unused.
func New(engine Matcher, resumes ResumeReader) *Service {
	return &Service{
		engine:      engine,
		resumes:     resumes,
		recorder:    nopRecorder{},
		validateJob: true,
		jobLimits:   posting.DefaultLimits(),
		now:         time.Now,
	}
}

// WithJobValidation toggles job posting validation.
func (s *Service) WithJobValidation(enabled bool) *Service {
	s.validateJob = enabled
	return s
}

// WithLimits overrides job posting length limits. Zero values keep the defaults.
func (s *Service) WithLimits(limits posting.Limits) *Service {
	if limits.MinChars > 0 {
		s.jobLimits.MinChars = limits.MinChars
	}
	if limits.MaxChars > 0 {
		s.jobLimits.MaxChars = limits.MaxChars
	}
	return s
}

// WithRecorder sets the metrics recorder.
func (s *Service) WithRecorder(r Recorder) *Service {
	if r != nil {
		s.recorder = r
	}
	return s
}

// Calculate scores resumeText against jobText.
func (s *Service) Calculate(ctx context.Context, resumeText, jobText string) (dommatch.Result, error) {
	return s.compute(ctx, KindDirect, resumeText, jobText)
}

// MatchStored scores the resume stored under resumeID against jobText.
func (s *Service) MatchStored(ctx context.Context, resumeID, jobText string) (dommatch.Result, error) {
	if s.resumes == nil {
		s.recorder.ObserveError(KindStored, "resume_not_found")
		return dommatch.Result{}, domain.ErrResumeNotFound
	}

	res, err := s.resumes.Get(ctx, resumeID)
	if err != nil {
		s.recorder.ObserveError(KindStored, reason(err))
		return dommatch.Result{}, fmt.Errorf("get resume: %w", err)
	}

	return s.compute(ctx, KindStored, res.Text(), jobText)
}

func (s *Service) compute(ctx context.Context, kind, resumeText, jobText string) (dommatch.Result, error) {
	if s.validateJob {
		if err := posting.Validate(jobText, s.jobLimits); err != nil {
			s.recorder.ObserveError(kind, reason(err))
			return dommatch.Result{}, fmt.Errorf("validate job posting: %w", err)
		}
	}

	start := s.now()
	result := s.engine.Match(resumeText, jobText)
	elapsed := s.now().Sub(start)

	b := result.Breakdown()
	s.recorder.ObserveMatch(kind, result.Score(), b.SynonymMatches, elapsed)

	logger.FromContext(ctx).Debug("Match computed",
		zap.String("kind", kind),
		zap.Int("score", result.Score()),
		zap.Int("job_terms", b.JobTerms),
		zap.Int("exact_matches", b.ExactMatches),
		zap.Int("enriched_matches", b.EnrichedMatches),
		zap.Int("synonym_matches", b.SynonymMatches),
		zap.Float64("jaccard", b.Jaccard),
		zap.Duration("duration", elapsed),
	)

	return result, nil
}

// reason maps an error to a low-cardinality metric label.
func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidJobPosting):
		return "invalid_job_posting"
	case errors.Is(err, domain.ErrResumeNotFound):
		return "resume_not_found"
	default:
		return "error"
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveMatch(string, int, int, time.Duration) {}
func (nopRecorder) ObserveError(string, string)                  {}
