// Package mcp exposes match scoring as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/version"
)

// Matcher is the match use case as seen by MCP tools.
type Matcher interface {
	Calculate(ctx context.Context, resumeText, jobText string) (dommatch.Result, error)
	MatchStored(ctx context.Context, resumeID, jobText string) (dommatch.Result, error)
}

// MatchScoreInput is the input of the match_score tool.
type MatchScoreInput struct {
	Resume         string `json:"resume" jsonschema:"Plain resume text"`
	JobDescription string `json:"job_description" jsonschema:"Full job description text"`
}

// StoredMatchInput is the input of the stored_resume_match tool.
type StoredMatchInput struct {
	ResumeID       string `json:"resume_id" jsonschema:"ID of a resume stored through the HTTP API"`
	JobDescription string `json:"job_description" jsonschema:"Full job description text"`
}

// Breakdown mirrors the scoring intermediates.
type Breakdown struct {
	TermScore       float64 `json:"term_score"`
	SynonymScore    float64 `json:"synonym_score"`
	Jaccard         float64 `json:"jaccard"`
	ExactMatches    int     `json:"exact_matches"`
	EnrichedMatches int     `json:"enriched_matches"`
	SynonymMatches  int     `json:"synonym_matches"`
	JobTerms        int     `json:"job_terms"`
}

// MatchOutput is the structured result of both tools.
type MatchOutput struct {
	MatchScore      int       `json:"match_score"`
	MatchedKeywords []string  `json:"matched_keywords"`
	ResumeKeywords  []string  `json:"resume_keywords"`
	JobKeywords     []string  `json:"job_keywords"`
	Breakdown       Breakdown `json:"breakdown"`
}

// NewServer creates an MCP server with the match tools registered.
// match_score is always available; stored_resume_match only when stored is true.
func NewServer(m Matcher, stored bool, logger *zap.Logger) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "jobmatch",
		Version: version.Version,
	}, nil)

	registerMatchScore(server, m, logger)
	if stored {
		registerStoredMatch(server, m, logger)
	}
	return server
}

// Handler serves server over streamable HTTP.
func Handler(server *mcpsdk.Server) http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server { return server }, nil)
}

func registerMatchScore(server *mcpsdk.Server, m Matcher, logger *zap.Logger) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name: "match_score",
		Description: "Score how well a resume matches a job description (0-100). " +
			"Returns matched keywords, the leading keywords of each text and the scoring breakdown.",
		Annotations: &mcpsdk.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcpsdk.CallToolRequest, input MatchScoreInput) (*mcpsdk.CallToolResult, MatchOutput, error) {
		if strings.TrimSpace(input.Resume) == "" {
			return nil, MatchOutput{}, errors.New("resume is required")
		}
		if strings.TrimSpace(input.JobDescription) == "" {
			return nil, MatchOutput{}, errors.New("job_description is required")
		}
		result, err := m.Calculate(ctx, input.Resume, input.JobDescription)
		if err != nil {
			return nil, MatchOutput{}, toolError(logger, "match_score", err)
		}
		return nil, toOutput(&result), nil
	})
}

func registerStoredMatch(server *mcpsdk.Server, m Matcher, logger *zap.Logger) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "stored_resume_match",
		Description: "Score a previously stored resume against a job description (0-100).",
		Annotations: &mcpsdk.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcpsdk.CallToolRequest, input StoredMatchInput) (*mcpsdk.CallToolResult, MatchOutput, error) {
		if strings.TrimSpace(input.ResumeID) == "" {
			return nil, MatchOutput{}, errors.New("resume_id is required")
		}
		if strings.TrimSpace(input.JobDescription) == "" {
			return nil, MatchOutput{}, errors.New("job_description is required")
		}
		result, err := m.MatchStored(ctx, input.ResumeID, input.JobDescription)
		if err != nil {
			return nil, MatchOutput{}, toolError(logger, "stored_resume_match", err)
		}
		return nil, toOutput(&result), nil
	})
}

// toolError hides internal failures from the client and keeps domain reasons.
func toolError(logger *zap.Logger, tool string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidJobPosting),
		errors.Is(err, domain.ErrResumeNotFound):
		logger.Warn("mcp tool rejected", zap.String("tool", tool), zap.Error(err))
		return fmt.Errorf("%s: %w", tool, err)
	default:
		logger.Error("mcp tool failed", zap.String("tool", tool), zap.Error(err))
		return errors.New("internal error")
	}
}

func toOutput(r *dommatch.Result) MatchOutput {
	b := r.Breakdown()
	return MatchOutput{
		MatchScore:      r.Score(),
		MatchedKeywords: r.Matched(),
		ResumeKeywords:  r.ResumeKeywords(),
		JobKeywords:     r.JobKeywords(),
		Breakdown: Breakdown{
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
