package match

import (
	"context"
	"time"

	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	domresume "github.com/kailas-cloud/jobmatch/internal/domain/resume"
)

// Matcher scores a resume against a job posting.
type Matcher interface {
	Match(resumeText, jobText string) dommatch.Result
}

// ResumeReader loads stored resumes.
type ResumeReader interface {
	Get(ctx context.Context, id string) (domresume.Resume, error)
}

// Recorder receives match outcomes for metrics.
type Recorder interface {
	ObserveMatch(kind string, score, synonymMatches int, elapsed time.Duration)
	ObserveError(kind, reason string)
}
