package match

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/jobs"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestMatcherScoreParsesModelReply(t *testing.T) {
	stub := &stubGenerator{response: `{"score": 87, "explanation": "Great fit", "matchedSkills": ["React", "AWS"]}`}
	matcher := NewMatcher(stub, zap.NewNop(), 0)

	job := jobs.Job{ID: "j1", Title: "React Developer", Skills: []string{"React", "AWS"}}
	result := matcher.Score(context.Background(), "react and aws engineer", job)

	if result.Score != 87 {
		t.Fatalf("expected score 87, got %d", result.Score)
	}
	if result.Explanation != "Great fit" {
		t.Fatalf("unexpected explanation: %q", result.Explanation)
	}
	if !reflect.DeepEqual(result.MatchedSkills, []string{"React", "AWS"}) {
		t.Fatalf("unexpected matched skills: %v", result.MatchedSkills)
	}
	if stub.lastPrompt == "" {
		t.Fatal("expected prompt to be sent")
	}
}

func TestMatcherScoreHandlesWrappedJSON(t *testing.T) {
	stub := &stubGenerator{response: "Sure! Here is the assessment:\n```json\n{\"score\": \"72\", \"explanation\": \"Decent overlap\", \"matchedSkills\": []}\n```\nLet me know if you need more."}
	matcher := NewMatcher(stub, zap.NewNop(), 0)

	result := matcher.Score(context.Background(), "resume", jobs.Job{ID: "j1"})

	if result.Score != 72 {
		t.Fatalf("expected score 72, got %d", result.Score)
	}
}

func TestMatcherScoreClampsOutOfRangeScores(t *testing.T) {
	stub := &stubGenerator{response: `{"score": 250, "explanation": "x", "matchedSkills": []}`}
	matcher := NewMatcher(stub, zap.NewNop(), 0)

	result := matcher.Score(context.Background(), "resume", jobs.Job{ID: "j1"})

	if result.Score != 100 {
		t.Fatalf("expected clamp to 100, got %d", result.Score)
	}
}

func TestMatcherScoreFallsBackOnGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	matcher := NewMatcher(stub, zap.NewNop(), 0)

	resume := "Senior React developer, 8 years, AWS, TypeScript"
	job := jobs.Job{
		Title:       "Senior React Developer",
		Skills:      []string{"React", "TypeScript", "AWS"},
		Description: "Senior role, 8+ years required",
	}

	got := matcher.Score(context.Background(), resume, job)
	want := Fallback(resume, job)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected fallback result %+v, got %+v", want, got)
	}
}

func TestMatcherScoreFallsBackOnUnparseableReply(t *testing.T) {
	stub := &stubGenerator{response: "I cannot answer in JSON, sorry."}
	matcher := NewMatcher(stub, zap.NewNop(), 0)

	job := jobs.Job{Skills: []string{"Go"}, Description: "backend"}
	got := matcher.Score(context.Background(), "go developer", job)
	want := Fallback("go developer", job)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected fallback result, got %+v", got)
	}
}

func TestMatcherScoreWithoutGeneratorUsesFallback(t *testing.T) {
	matcher := NewMatcher(nil, zap.NewNop(), 0)

	job := jobs.Job{Skills: []string{"Python"}, Description: "data"}
	got := matcher.Score(context.Background(), "python", job)
	want := Fallback("python", job)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected fallback result, got %+v", got)
	}
}

func TestBuildScorePromptTruncatesInputs(t *testing.T) {
	// Distinct runes that never appear in the prompt template.
	longResume := strings.Repeat("ř", 5000)
	longDescription := strings.Repeat("ď", 3000)

	prompt := buildScorePrompt(longResume, jobs.Job{Description: longDescription})

	if got := countRune(prompt, 'ř'); got != maxPromptResumeRunes {
		t.Fatalf("expected resume capped at %d runes, got %d", maxPromptResumeRunes, got)
	}
	if got := countRune(prompt, 'ď'); got != maxPromptDescriptionRunes {
		t.Fatalf("expected description capped at %d runes, got %d", maxPromptDescriptionRunes, got)
	}
}

func TestExtractJSONObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		ok     bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"nested", `noise {"a":{"b":2}} trailing`, `{"a":{"b":2}}`, true},
		{"brace in string", `{"a":"}"}`, `{"a":"}"}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"no object", "plain text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := extractJSONObject(tt.input)
			if ok != tt.ok || got != tt.expect {
				t.Fatalf("expected (%q, %v), got (%q, %v)", tt.expect, tt.ok, got, ok)
			}
		})
	}
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
