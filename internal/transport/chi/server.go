package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	domresume "github.com/kailas-cloud/jobmatch/internal/domain/resume"
	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
	"github.com/kailas-cloud/jobmatch/internal/version"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes = 1 << 20

// Matcher is the match use case as seen by the HTTP layer.
type Matcher interface {
	Calculate(ctx context.Context, resumeText, jobText string) (dommatch.Result, error)
	MatchStored(ctx context.Context, resumeID, jobText string) (dommatch.Result, error)
}

// Resumes is the resume use case as seen by the HTTP layer.
type Resumes interface {
	Create(ctx context.Context, fileName, text string) (domresume.Resume, error)
	Put(ctx context.Context, id, fileName, text string) (domresume.Resume, bool, error)
	Get(ctx context.Context, id string) (domresume.Resume, error)
	List(ctx context.Context) ([]domresume.Resume, error)
	Delete(ctx context.Context, id string) error
	Limits() domresume.Limits
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers.
type Server struct {
	match         Matcher
	resumes       Resumes
	health        HealthChecker
	logger        *zap.Logger
	maxBodyBytes  int64
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. resumes may be nil to disable resume storage routes.
func NewServer(match Matcher, resumes Resumes, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		match:        match,
		resumes:      resumes,
		health:       health,
		logger:       logger,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrResumeNotFound, http.StatusNotFound, CodeResumeNotFound),
		sentinelHandler(domain.ErrInvalidJobPosting, http.StatusUnprocessableEntity, CodeInvalidJobPosting),
		sentinelHandler(domain.ErrInvalidResume, http.StatusUnprocessableEntity, CodeInvalidResume),
	}
	return s
}

// WithMaxBodyBytes caps request body size.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	if n > 0 {
		s.maxBodyBytes = n
	}
	return s
}

// CalculateMatch handles POST /match.
func (s *Server) CalculateMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "resume_text and job_text are required")
		return
	}

	result, err := s.match.Calculate(r.Context(), req.ResumeText, req.JobText)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matchToResponse(&result))
}

// MatchStoredResume handles POST /resumes/{id}/match.
func (s *Server) MatchStoredResume(w http.ResponseWriter, r *http.Request) {
	var req StoredMatchRequest
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.JobText) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "job_text is required")
		return
	}

	result, err := s.match.MatchStored(r.Context(), chi.URLParam(r, "id"), req.JobText)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matchToResponse(&result))
}

// CreateResume handles POST /resumes.
func (s *Server) CreateResume(w http.ResponseWriter, r *http.Request) {
	var req ResumeRequest
	if !s.decodeResume(w, r, &req) {
		return
	}

	res, err := s.resumes.Create(r.Context(), req.FileName, req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/resumes/"+res.ID())
	writeJSON(w, http.StatusCreated, resumeToResponse(&res, false))
}

// PutResume handles PUT /resumes/{id}.
func (s *Server) PutResume(w http.ResponseWriter, r *http.Request) {
	var req ResumeRequest
	if !s.decodeResume(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	res, created, err := s.resumes.Put(r.Context(), id, req.FileName, req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", "/resumes/"+id)
	}
	writeJSON(w, status, resumeToResponse(&res, false))
}

// GetResume handles GET /resumes/{id}.
func (s *Server) GetResume(w http.ResponseWriter, r *http.Request) {
	res, err := s.resumes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resumeToResponse(&res, true))
}

// ListResumes handles GET /resumes.
func (s *Server) ListResumes(w http.ResponseWriter, r *http.Request) {
	list, err := s.resumes.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]ResumeResponse, len(list))
	for i := range list {
		items[i] = resumeToResponse(&list[i], false)
	}
	writeJSON(w, http.StatusOK, ResumeListResponse{Items: items, Total: len(items)})
}

// DeleteResume handles DELETE /resumes/{id}.
func (s *Server) DeleteResume(w http.ResponseWriter, r *http.Request) {
	if err := s.resumes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: version.Info(),
	})
}

// decode reads a JSON body capped at maxBodyBytes. On failure it writes the error and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// decodeResume decodes a resume body and checks the declared upload metadata.
func (s *Server) decodeResume(w http.ResponseWriter, r *http.Request, req *ResumeRequest) bool {
	if !s.decode(w, r, req) {
		return false
	}
	if req.FileSize > 0 {
		if err := domresume.ValidateFile(req.FileName, req.FileSize, s.resumes.Limits()); err != nil {
			s.handleDomainError(w, err)
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-safe message built from the known
// sentinels in the chain, without wrapped internals.
func safeDomainMessage(err error) string {
	// Job validation joins every failed rule, so all specific causes are reported.
	specific := []error{
		domain.ErrJobTooShort,
		domain.ErrJobTooLong,
		domain.ErrNotJobPosting,
		domain.ErrResumeTooShort,
		domain.ErrInvalidFileName,
		domain.ErrInvalidFileSize,
	}
	var msgs []string
	for _, s := range specific {
		if errors.Is(err, s) {
			msgs = append(msgs, s.Error())
		}
	}
	if len(msgs) > 0 {
		return strings.Join(msgs, "; ")
	}

	generic := []error{
		domain.ErrResumeNotFound,
		domain.ErrInvalidJobPosting,
		domain.ErrInvalidResume,
	}
	for _, s := range generic {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			s.logger.Warn("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
