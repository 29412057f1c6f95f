package match

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/kailas-cloud/jobmatch/internal/domain/term"
	"github.com/kailas-cloud/jobmatch/internal/domain/thesaurus"
)

func newDefaultEngine() *Engine {
	return NewEngine(thesaurus.Default(), DefaultWeights())
}

func TestEngine_ProductManagerVsProductOwner(t *testing.T) {
	r := newDefaultEngine().Match(
		"Senior Product Manager with Agile and Scrum experience",
		"We need a Product Owner skilled in Agile and Scrum methodologies",
	)

	b := r.Breakdown()
	if b.JobTerms != 13 {
		t.Errorf("JobTerms = %d, want 13", b.JobTerms)
	}
	if b.ExactMatches != 4 {
		t.Errorf("ExactMatches = %d, want 4", b.ExactMatches)
	}
	if b.EnrichedMatches != 9 {
		t.Errorf("EnrichedMatches = %d, want 9", b.EnrichedMatches)
	}
	if b.SynonymMatches == 0 {
		t.Error("expected synonym matches for product manager / product owner")
	}
	if math.Abs(b.Jaccard-0.3) > 1e-9 {
		t.Errorf("Jaccard = %v, want 0.3", b.Jaccard)
	}

	matched := r.Matched()
	for _, want := range []string{"product", "agile", "scrum", "agile scrum", "product manager", "manager"} {
		if !slices.Contains(matched, want) {
			t.Errorf("matched %v missing %q", matched, want)
		}
	}
	// Exact matches lead the list.
	if !slices.Equal(matched[:4], []string{"product", "agile", "scrum", "agile scrum"}) {
		t.Errorf("matched prefix = %v", matched[:4])
	}

	// The weighted sum lands just above the cap.
	if r.Score() != 100 {
		t.Errorf("Score = %d, want 100", r.Score())
	}
}

func TestEngine_MidRangeScore(t *testing.T) {
	r := newDefaultEngine().Match(
		"Backend engineer building Go microservices on AWS with Kubernetes and PostgreSQL",
		"Looking for a frontend developer with React, TypeScript and CSS experience for our cloud team",
	)
	if r.Score() != 21 {
		t.Errorf("Score = %d, want 21", r.Score())
	}
	if got := r.Matched(); !slices.Equal(got, []string{"aws"}) {
		t.Errorf("Matched = %v, want [aws]", got)
	}
	if r.Breakdown().SynonymMatches != 1 {
		t.Errorf("SynonymMatches = %d, want 1", r.Breakdown().SynonymMatches)
	}
}

func TestEngine_Identity(t *testing.T) {
	inputs := []string{
		"Python developer",
		"Senior Product Manager with Agile and Scrum experience",
		"zzz",
	}
	e := newDefaultEngine()
	for _, in := range inputs {
		r := e.Match(in, in)
		if r.Score() != 100 {
			t.Errorf("Match(%q, itself) = %d, want 100", in, r.Score())
		}
		if r.Breakdown().Jaccard != 1 {
			t.Errorf("Jaccard(%q, itself) = %v, want 1", in, r.Breakdown().Jaccard)
		}
	}
}

func TestEngine_Degenerate(t *testing.T) {
	tests := []struct {
		name        string
		resume, job string
	}{
		{"both empty", "", ""},
		{"only short tokens", "a b", "c d"},
		{"only stop words", "the and with", "those were being"},
		{"resume empty", "", "Go engineer with Kubernetes"},
		{"job empty", "Go engineer with Kubernetes", ""},
		{"punctuation", "!!!", "???"},
	}
	e := newDefaultEngine()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := e.Match(tc.resume, tc.job)
			if r.Score() != 0 {
				t.Errorf("Score = %d, want 0", r.Score())
			}
			if len(r.Matched()) != 0 {
				t.Errorf("Matched = %v, want empty", r.Matched())
			}
		})
	}
}

func TestEngine_Disjoint(t *testing.T) {
	r := newDefaultEngine().Match(
		"golang backend services kubernetes",
		"marketing copywriter brand campaigns",
	)
	if r.Score() != 0 {
		t.Errorf("Score = %d, want 0", r.Score())
	}
}

func TestEngine_SynonymSymmetry(t *testing.T) {
	e := newDefaultEngine()
	ab := e.Match("Product Owner", "Product Manager")
	ba := e.Match("Product Manager", "Product Owner")
	if ab.Breakdown().SynonymMatches == 0 || ba.Breakdown().SynonymMatches == 0 {
		t.Fatalf("synonym matches: %d / %d", ab.Breakdown().SynonymMatches, ba.Breakdown().SynonymMatches)
	}
	if !slices.Contains(ab.Matched(), "product owner") {
		t.Errorf("Matched = %v, want product owner", ab.Matched())
	}
}

func TestEngine_OneWayThesaurusEntry(t *testing.T) {
	// "agile coach" is only listed under "scrum master".
	r := newDefaultEngine().Match("agile coach", "scrum master")
	if !slices.Contains(r.Matched(), "agile coach") {
		t.Errorf("Matched = %v, want agile coach", r.Matched())
	}
	if r.Score() != 85 {
		t.Errorf("Score = %d, want 85", r.Score())
	}
}

func TestEngine_PartialMatch(t *testing.T) {
	r := newDefaultEngine().Match("Java developer", "JavaScript engineer")
	if got := r.Matched(); !slices.Equal(got, []string{"java"}) {
		t.Errorf("Matched = %v, want [java]", got)
	}
	if r.Score() != 50 {
		t.Errorf("Score = %d, want 50", r.Score())
	}
}

func TestEngine_NilSynonyms(t *testing.T) {
	r := NewEngine(nil, DefaultWeights()).Match("agile coach", "scrum master")
	if r.Score() != 0 || r.Breakdown().SynonymMatches != 0 {
		t.Errorf("Score = %d, synonyms = %d; want 0, 0", r.Score(), r.Breakdown().SynonymMatches)
	}
}

func TestEngine_ListLimits(t *testing.T) {
	var words []string
	for i := range 80 {
		words = append(words, "skill"+strings.Repeat("x", i%5)+string(rune('a'+i%26))+string(rune('a'+i/26)))
	}
	doc := strings.Join(words, " ")
	r := newDefaultEngine().Match(doc, doc)
	if len(r.Matched()) != MaxMatched {
		t.Errorf("len(Matched) = %d, want %d", len(r.Matched()), MaxMatched)
	}
	if len(r.ResumeKeywords()) != MaxKeywords || len(r.JobKeywords()) != MaxKeywords {
		t.Errorf("keyword lists = %d / %d, want %d", len(r.ResumeKeywords()), len(r.JobKeywords()), MaxKeywords)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	e := newDefaultEngine()
	resume := "Cloud engineer: AWS, GCP, Terraform; led data analytics team"
	job := "Seeking cloud computing engineer with Azure and metrics experience to lead our team"
	first := e.Match(resume, job)
	for range 20 {
		again := e.Match(resume, job)
		if again.Score() != first.Score() || !slices.Equal(again.Matched(), first.Matched()) {
			t.Fatal("Match is not deterministic")
		}
	}
}

func FuzzEngineMatch(f *testing.F) {
	seeds := [][2]string{
		{"", ""},
		{"a", "a"},
		{"", "Product Owner"},
		{
			"Senior Product Manager with Agile and Scrum experience",
			"We need a Product Owner skilled in Agile and Scrum methodologies",
		},
		{"Développeur Go à Paris, équipe données", "東京のソフトウェアエンジニア募集 golang"},
		{"\xff\xfe\xfd go engineer \xc3\x28", "golang \xe2\x82 engineer"},
		{strings.Repeat("machine learning python ", 200), strings.Repeat("data science ", 150)},
	}
	for _, s := range seeds {
		f.Add(s[0], s[1])
	}

	e := newDefaultEngine()
	f.Fuzz(func(t *testing.T, resume, job string) {
		r := e.Match(resume, job)

		if r.Score() < 0 || r.Score() > 100 {
			t.Fatalf("score %d out of range", r.Score())
		}
		if n := len(r.Matched()); n > MaxMatched {
			t.Fatalf("matched %d terms, limit %d", n, MaxMatched)
		}
		if n := len(r.ResumeKeywords()); n > MaxKeywords {
			t.Fatalf("resume keywords %d, limit %d", n, MaxKeywords)
		}
		if n := len(r.JobKeywords()); n > MaxKeywords {
			t.Fatalf("job keywords %d, limit %d", n, MaxKeywords)
		}

		again := e.Match(resume, job)
		if again.Score() != r.Score() ||
			again.Breakdown() != r.Breakdown() ||
			!slices.Equal(again.Matched(), r.Matched()) ||
			!slices.Equal(again.ResumeKeywords(), r.ResumeKeywords()) ||
			!slices.Equal(again.JobKeywords(), r.JobKeywords()) {
			t.Fatalf("Match(%q, %q) is not deterministic", resume, job)
		}
	})
}

func TestCompare_SubstringGuard(t *testing.T) {
	tests := []struct {
		name         string
		resume, job  string
		wantEnriched []string
	}{
		{"both longer than three", "java", "javascript", []string{"java"}},
		{"short resume term", "api", "apis", nil},
		{"short job term", "reactjs", "act", nil},
		{"exactly four chars", "node", "nodejs", []string{"node"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sig := Compare(
				term.FromTerms([]string{tc.resume}),
				term.FromTerms([]string{tc.job}),
				nil, nil, nil,
			)
			if !slices.Equal(sig.Enriched, tc.wantEnriched) {
				t.Errorf("Enriched = %v, want %v", sig.Enriched, tc.wantEnriched)
			}
		})
	}
}

type stubRelator map[[2]string]bool

func (s stubRelator) Related(a, b string) bool { return s[[2]string{a, b}] }

func TestCompare_SynonymCountsEveryPair(t *testing.T) {
	rel := stubRelator{
		{"lead", "manager"}:   true,
		{"lead", "director"}:  true,
		{"coach", "director"}: true,
	}
	sig := Compare(
		term.FromTerms([]string{"lead", "coach"}),
		term.FromTerms([]string{"manager", "director"}),
		nil, nil, rel,
	)
	if sig.SynonymMatches != 3 {
		t.Errorf("SynonymMatches = %d, want 3", sig.SynonymMatches)
	}
	if !slices.Equal(sig.Enriched, []string{"lead", "coach"}) {
		t.Errorf("Enriched = %v", sig.Enriched)
	}
	if len(sig.Exact) != 0 {
		t.Errorf("Exact = %v, want none", sig.Exact)
	}
}

func TestCompare_SynonymTakesPrecedenceOverPartial(t *testing.T) {
	rel := stubRelator{{"management", "manage"}: true}
	sig := Compare(
		term.FromTerms([]string{"management"}),
		term.FromTerms([]string{"manage"}),
		nil, nil, rel,
	)
	if sig.SynonymMatches != 1 {
		t.Errorf("SynonymMatches = %d, want 1", sig.SynonymMatches)
	}
	if len(sig.Enriched) != 1 {
		t.Errorf("Enriched = %v", sig.Enriched)
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"both empty", nil, nil, 0},
		{"one empty", []string{"go"}, nil, 0},
		{"identical", []string{"go", "rust"}, []string{"rust", "go"}, 1},
		{"half overlap", []string{"a1", "b2", "c3"}, []string{"b2", "c3", "d4"}, 0.5},
		{"duplicates ignored", []string{"go", "go", "go"}, []string{"go"}, 1},
		{"empty tokens ignored", []string{"", "go"}, []string{"go", ""}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Jaccard(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Jaccard = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWeights_Score(t *testing.T) {
	w := DefaultWeights()
	tests := []struct {
		name                    string
		jobTerms, exact, enrich int
		jaccard                 float64
		want                    int
	}{
		{"nothing", 0, 0, 0, 0, 0},
		{"no job terms floors denominator", 0, 0, 0, 1, 15},
		{"boost only applies with enriched", 10, 0, 0, 0.4, 6},
		{"one enriched of three", 3, 0, 1, 0, 50},
		{"capped", 3, 3, 3, 1, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := w.Score(tc.jobTerms, tc.exact, tc.enrich, tc.jaccard)
			if got != tc.want {
				t.Errorf("Score(%d, %d, %d, %v) = %d, want %d",
					tc.jobTerms, tc.exact, tc.enrich, tc.jaccard, got, tc.want)
			}
		})
	}
}

func TestWeights_ScoreRoundsHalfUp(t *testing.T) {
	w := Weights{Jaccard: 1, Scale: 1, Cap: 100}
	if got := w.Score(1, 0, 0, 0.125); got != 13 {
		t.Errorf("12.5 rounded to %d, want 13", got)
	}
	if got := w.Score(1, 0, 0, 0.375); got != 38 {
		t.Errorf("37.5 rounded to %d, want 38", got)
	}
}

func TestWeights_ScoreBounded(t *testing.T) {
	w := DefaultWeights()
	for job := 0; job <= 12; job++ {
		for exact := 0; exact <= job; exact++ {
			for enrich := exact; enrich <= job+2; enrich++ {
				for _, jac := range []float64{0, 0.25, 0.5, 1} {
					s := w.Score(job, exact, enrich, jac)
					if s < 0 || s > 100 {
						t.Fatalf("Score(%d, %d, %d, %v) = %d out of range", job, exact, enrich, jac, s)
					}
				}
			}
		}
	}
}

func TestWeights_Validate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	bad := []Weights{
		{Enriched: -0.1, Scale: 1, Cap: 100},
		{Enriched: 1, Scale: 0, Cap: 100},
		{Enriched: 1, Scale: 1, Cap: 0},
		{Enriched: 1, Scale: 1, Cap: 101},
	}
	for i, w := range bad {
		if err := w.Validate(); err == nil {
			t.Errorf("case %d: expected error for %+v", i, w)
		}
	}
}

func TestNewResult_TruncatesAndCopies(t *testing.T) {
	long := make([]string, 50)
	for i := range long {
		long[i] = strings.Repeat("k", i+1)
	}
	r := NewResult(42, long, long, long, Breakdown{})
	if len(r.Matched()) != MaxMatched || len(r.ResumeKeywords()) != MaxKeywords || len(r.JobKeywords()) != MaxKeywords {
		t.Fatal("lists not truncated")
	}
	long[0] = "mutated"
	if r.Matched()[0] != "k" {
		t.Error("Result shares backing array with input")
	}
	m := r.Matched()
	m[0] = "mutated"
	if r.Matched()[0] != "k" {
		t.Error("Matched exposes internal slice")
	}
}
