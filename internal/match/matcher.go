package match

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/ai"
	"github.com/akhila-3010/job-tracker/internal/jobs"
	"github.com/akhila-3010/job-tracker/internal/logger"
)

//go:embed prompt.md
var promptTemplate string

// Prompt-cost bounds; the contract visible to callers is unchanged.
const (
	maxPromptResumeRunes      = 2000
	maxPromptDescriptionRunes = 1000
)

const defaultMaxLogLength = 200

const aiExplanationFallback = "AI-based matching"

// Matcher scores resume/job pairs, preferring a language model and degrading
// to the deterministic scorer on any failure. Score never returns an error.
type Matcher struct {
	generator ai.Generator
	logger    *zap.Logger
	maxLogLen int
}

// NewMatcher builds a Matcher. A nil generator is valid and means every score
// comes from the deterministic path.
func NewMatcher(generator ai.Generator, log *zap.Logger, maxLogLength int) *Matcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Matcher{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Score produces a match result for one posting. AI transport and parse
// failures are logged and absorbed by falling back.
func (m *Matcher) Score(ctx context.Context, resumeText string, job jobs.Job) Result {
	if m.generator == nil {
		return Fallback(resumeText, job)
	}

	result, err := m.aiScore(ctx, resumeText, job)
	if err != nil {
		m.logger.Warn("ai scoring failed, using fallback",
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
		return Fallback(resumeText, job)
	}

	return result
}

func (m *Matcher) aiScore(ctx context.Context, resumeText string, job jobs.Job) (Result, error) {
	prompt := buildScorePrompt(resumeText, job)

	m.logger.Debug("gemini score request",
		zap.String("job_id", job.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, m.maxLogLen)),
	)

	raw, err := m.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return Result{}, err
	}

	m.logger.Debug("gemini score response",
		zap.String("job_id", job.ID),
		zap.String("response_preview", logger.TruncateForLog(raw, m.maxLogLen)),
	)

	return parseScoreResponse(raw, resumeText)
}

func buildScorePrompt(resumeText string, job jobs.Job) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{RESUME}}", capRunes(resumeText, maxPromptResumeRunes))
	prompt = strings.ReplaceAll(prompt, "{{TITLE}}", job.Title)
	prompt = strings.ReplaceAll(prompt, "{{COMPANY}}", job.Company)
	prompt = strings.ReplaceAll(prompt, "{{LOCATION}}", job.Location)
	prompt = strings.ReplaceAll(prompt, "{{DESCRIPTION}}", capRunes(job.Description, maxPromptDescriptionRunes))
	prompt = strings.ReplaceAll(prompt, "{{SKILLS}}", strings.Join(job.Skills, ", "))
	return prompt
}

func parseScoreResponse(raw, resumeText string) (Result, error) {
	span, ok := extractJSONObject(raw)
	if !ok {
		return Result{}, fmt.Errorf("no JSON object in model reply")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(span), &data); err != nil {
		return Result{}, fmt.Errorf("parse model reply: %w", err)
	}

	score := coerceFloat(data["score"])
	if math.IsNaN(score) {
		score = 0
	}

	explanation := coerceString(data["explanation"])
	if explanation == "" {
		explanation = aiExplanationFallback
	}

	return Result{
		Score:         clampScore(int(math.Round(score))),
		Explanation:   explanation,
		MatchedSkills: coerceStrings(data["matchedSkills"]),
		ResumeSkills:  head(ExtractSkills(resumeText), maxResumeSkills),
	}, nil
}

// extractJSONObject returns the first balanced {...} span in raw. Models wrap
// JSON in prose or markdown fences; a balanced scan tolerates both.
func extractJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}

	return "", false
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		return ""
	}
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := coerceString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func capRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
