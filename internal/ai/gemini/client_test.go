package gemini

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

type fakeModels struct {
	mu      sync.Mutex
	queue   []fakeResponse
	prompts []string
}

func (f *fakeModels) GenerateContent(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, content := range contents {
		for _, part := range content.Parts {
			f.prompts = append(f.prompts, part.Text)
		}
	}
	if len(f.queue) == 0 {
		return nil, genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}
	}
	res := f.queue[0]
	f.queue = f.queue[1:]
	return res.resp, res.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	originalSleep := sleep
	sleep = func(time.Duration) {}
	defer func() { sleep = originalSleep }()

	models := &fakeModels{queue: []fakeResponse{
		{err: genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}},
		{resp: textResponse("retry ok")},
	}}

	g := &Generator{models: models, model: "gemini-2.5-flash", maxRetries: 2, logger: zap.NewNop()}

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}

	if len(models.prompts) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.prompts))
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	originalSleep := sleep
	sleep = func(time.Duration) {}
	defer func() { sleep = originalSleep }()

	models := &fakeModels{}

	g := &Generator{models: models, model: "gemini-2.5-flash", maxRetries: 2, logger: zap.NewNop()}

	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error after retries exhausted")
	}

	if len(models.prompts) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.prompts))
	}
}

func TestGeneratorDoesNotRetryQuotaErrors(t *testing.T) {
	models := &fakeModels{queue: []fakeResponse{
		{err: genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}},
	}}

	g := &Generator{models: models, model: "gemini-2.5-flash", maxRetries: 3, logger: zap.NewNop()}

	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected quota error to surface")
	}

	if len(models.prompts) != 1 {
		t.Fatalf("expected single call, got %d", len(models.prompts))
	}
}

func TestGeneratorRejectsEmptyPrompt(t *testing.T) {
	g := &Generator{models: &fakeModels{}, model: "gemini-2.5-flash", maxRetries: 1, logger: zap.NewNop()}

	if _, err := g.GenerateContent(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestGeneratorJoinsMultipleParts(t *testing.T) {
	models := &fakeModels{queue: []fakeResponse{{
		resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: " first "},
					{Text: ""},
					{Text: "second"},
				}},
			}},
		},
	}}}

	g := &Generator{models: models, model: "gemini-2.5-flash", maxRetries: 1, logger: zap.NewNop()}

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "first\nsecond" {
		t.Fatalf("unexpected output: %q", output)
	}
}
