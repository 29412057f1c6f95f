package chi

import (
	"time"

	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	domresume "github.com/kailas-cloud/jobmatch/internal/domain/resume"
)

// ErrorCode is the machine-readable error identifier in API responses.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeUnauthorized      ErrorCode = "unauthorized"
	CodePayloadTooLarge   ErrorCode = "payload_too_large"
	CodeInvalidJobPosting ErrorCode = "invalid_job_posting"
	CodeInvalidResume     ErrorCode = "invalid_resume"
	CodeResumeNotFound    ErrorCode = "resume_not_found"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// MatchRequest is the body of POST /match.
type MatchRequest struct {
	ResumeText string `json:"resume_text"`
	JobText    string `json:"job_text"`
}

// StoredMatchRequest is the body of POST /resumes/{id}/match.
type StoredMatchRequest struct {
	JobText string `json:"job_text"`
}

// BreakdownResponse mirrors match.Breakdown.
type BreakdownResponse struct {
	TermScore       float64 `json:"term_score"`
	SynonymScore    float64 `json:"synonym_score"`
	Jaccard         float64 `json:"jaccard"`
	ExactMatches    int     `json:"exact_matches"`
	EnrichedMatches int     `json:"enriched_matches"`
	SynonymMatches  int     `json:"synonym_matches"`
	JobTerms        int     `json:"job_terms"`
}

// MatchResponse is the JSON form of a match result.
type MatchResponse struct {
	MatchScore      int               `json:"match_score"`
	MatchedKeywords []string          `json:"matched_keywords"`
	ResumeKeywords  []string          `json:"resume_keywords"`
	JobKeywords     []string          `json:"job_keywords"`
	Breakdown       BreakdownResponse `json:"breakdown"`
}

// ResumeRequest is the body of POST /resumes and PUT /resumes/{id}.
// FileSize is the original upload size in bytes; zero skips the size check.
type ResumeRequest struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
	FileSize int64  `json:"file_size,omitempty"`
}

// ResumeResponse describes a stored resume. Text is omitted in listings.
type ResumeResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
	TextChars  int       `json:"text_chars"`
	Text       string    `json:"text,omitempty"`
}

// ResumeListResponse wraps GET /resumes.
type ResumeListResponse struct {
	Items []ResumeResponse `json:"items"`
	Total int              `json:"total"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version map[string]string `json:"version,omitempty"`
}

func matchToResponse(r *dommatch.Result) MatchResponse {
	b := r.Breakdown()
	return MatchResponse{
		MatchScore:      r.Score(),
		MatchedKeywords: r.Matched(),
		ResumeKeywords:  r.ResumeKeywords(),
		JobKeywords:     r.JobKeywords(),
		Breakdown: BreakdownResponse{
			TermScore:       b.TermScore,
			SynonymScore:    b.SynonymScore,
			Jaccard:         b.Jaccard,
			ExactMatches:    b.ExactMatches,
			EnrichedMatches: b.EnrichedMatches,
			SynonymMatches:  b.SynonymMatches,
			JobTerms:        b.JobTerms,
		},
	}
}

func resumeToResponse(r *domresume.Resume, withText bool) ResumeResponse {
	resp := ResumeResponse{
		ID:         r.ID(),
		FileName:   r.FileName(),
		UploadedAt: r.UploadedAt(),
		TextChars:  len([]rune(r.Text())),
	}
	if withText {
		resp.Text = r.Text()
	}
	return resp
}
