package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
)

// --- Mocks ---

type mockMatcher struct {
	calculateFn func(ctx context.Context, resumeText, jobText string) (dommatch.Result, error)
	storedFn    func(ctx context.Context, id, jobText string) (dommatch.Result, error)
}

func (m *mockMatcher) Calculate(ctx context.Context, resumeText, jobText string) (dommatch.Result, error) {
	return m.calculateFn(ctx, resumeText, jobText)
}

func (m *mockMatcher) MatchStored(ctx context.Context, id, jobText string) (dommatch.Result, error) {
	return m.storedFn(ctx, id, jobText)
}

// --- Helpers ---

func connect(t *testing.T, server *mcpsdk.Server) *mcpsdk.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	ss, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = ss.Close() })

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "v0"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func call(t *testing.T, cs *mcpsdk.ClientSession, name string, args map[string]any) *mcpsdk.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcpsdk.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool %s: %v", name, err)
	}
	return res
}

func decodeOutput(t *testing.T, res *mcpsdk.CallToolResult) MatchOutput {
	t.Helper()
	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var out MatchOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	return out
}

func resultText(res *mcpsdk.CallToolResult) string {
	var sb strings.Builder
	for _, c := range res.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func sampleResult() dommatch.Result {
	return dommatch.NewResult(64, []string{"golang"}, []string{"golang", "kubernetes"}, []string{"golang"},
		dommatch.Breakdown{ExactMatches: 1, EnrichedMatches: 1, JobTerms: 1})
}

// --- Tests ---

func TestListTools(t *testing.T) {
	tests := []struct {
		stored bool
		want   []string
	}{
		{false, []string{"match_score"}},
		{true, []string{"match_score", "stored_resume_match"}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("stored=%v", tc.stored), func(t *testing.T) {
			cs := connect(t, NewServer(&mockMatcher{}, tc.stored, zap.NewNop()))
			res, err := cs.ListTools(context.Background(), nil)
			if err != nil {
				t.Fatalf("ListTools: %v", err)
			}
			got := map[string]bool{}
			for _, tool := range res.Tools {
				got[tool.Name] = true
				if tool.Annotations == nil || !tool.Annotations.ReadOnlyHint {
					t.Errorf("tool %s should be read-only", tool.Name)
				}
			}
			if len(got) != len(tc.want) {
				t.Errorf("tools = %v, want %v", got, tc.want)
			}
			for _, name := range tc.want {
				if !got[name] {
					t.Errorf("missing tool %s", name)
				}
			}
		})
	}
}

func TestMatchScore(t *testing.T) {
	m := &mockMatcher{calculateFn: func(_ context.Context, resumeText, jobText string) (dommatch.Result, error) {
		if resumeText != "go dev" || jobText != "golang role" {
			t.Errorf("got %q / %q", resumeText, jobText)
		}
		return sampleResult(), nil
	}}
	cs := connect(t, NewServer(m, false, zap.NewNop()))

	res := call(t, cs, "match_score", map[string]any{"resume": "go dev", "job_description": "golang role"})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(res))
	}
	out := decodeOutput(t, res)
	if out.MatchScore != 64 || len(out.MatchedKeywords) != 1 || out.Breakdown.JobTerms != 1 {
		t.Errorf("output = %+v", out)
	}
}

func TestMatchScore_EmptyResume(t *testing.T) {
	cs := connect(t, NewServer(&mockMatcher{}, false, zap.NewNop()))

	res := call(t, cs, "match_score", map[string]any{"resume": " ", "job_description": "golang role"})
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	if !strings.Contains(resultText(res), "resume is required") {
		t.Errorf("text = %q", resultText(res))
	}
}

func TestMatchScore_InvalidJob(t *testing.T) {
	m := &mockMatcher{calculateFn: func(context.Context, string, string) (dommatch.Result, error) {
		return dommatch.Result{}, fmt.Errorf("%w: %w", domain.ErrInvalidJobPosting, domain.ErrJobTooShort)
	}}
	cs := connect(t, NewServer(m, false, zap.NewNop()))

	res := call(t, cs, "match_score", map[string]any{"resume": "r", "job_description": "j"})
	if !res.IsError || !strings.Contains(resultText(res), "job description too short") {
		t.Errorf("expected job posting error, got %q", resultText(res))
	}
}

func TestMatchScore_InternalErrorHidden(t *testing.T) {
	m := &mockMatcher{calculateFn: func(context.Context, string, string) (dommatch.Result, error) {
		return dommatch.Result{}, errors.New("redis: connection refused at 10.0.0.1")
	}}
	cs := connect(t, NewServer(m, false, zap.NewNop()))

	res := call(t, cs, "match_score", map[string]any{"resume": "r", "job_description": "j"})
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	if strings.Contains(resultText(res), "10.0.0.1") {
		t.Errorf("internal details leaked: %q", resultText(res))
	}
}

func TestStoredResumeMatch(t *testing.T) {
	m := &mockMatcher{storedFn: func(_ context.Context, id, _ string) (dommatch.Result, error) {
		if id == "r1" {
			return sampleResult(), nil
		}
		return dommatch.Result{}, fmt.Errorf("get resume: %w", domain.ErrResumeNotFound)
	}}
	cs := connect(t, NewServer(m, true, zap.NewNop()))

	res := call(t, cs, "stored_resume_match", map[string]any{"resume_id": "r1", "job_description": "golang role"})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(res))
	}
	if out := decodeOutput(t, res); out.MatchScore != 64 {
		t.Errorf("score = %d", out.MatchScore)
	}

	res = call(t, cs, "stored_resume_match", map[string]any{"resume_id": "nope", "job_description": "golang role"})
	if !res.IsError || !strings.Contains(resultText(res), "resume not found") {
		t.Errorf("expected not found, got %q", resultText(res))
	}
}
