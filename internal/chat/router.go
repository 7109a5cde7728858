// Package chat classifies free-text user messages into product-help answers
// or job-filtering queries, with an optional AI path that degrades to the
// rule-based router on any failure.
package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "embed"

	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/ai"
	"github.com/akhila-3010/job-tracker/internal/jobs"
	"github.com/akhila-3010/job-tracker/internal/logger"
	"github.com/akhila-3010/job-tracker/internal/match"
)

//go:embed prompt.md
var promptTemplate string

// ResponseType tells the client how to render the reply.
type ResponseType string

const (
	TypeHelp ResponseType = "help"
	TypeJobs ResponseType = "jobs"
)

// Response is the router's answer to one chat message.
type Response struct {
	Type    ResponseType     `json:"type"`
	Message string           `json:"message"`
	Jobs    []jobs.ScoredJob `json:"jobs"`
}

const (
	maxResponseJobs = 6
	maxBestMatches  = 5
	maxPromptJobs   = 10
	recentWindow    = 7 * 24 * time.Hour
)

const (
	noResultsMessage       = "I couldn't find any jobs matching your criteria. Try broadening your search or asking about different skills."
	recommendationsMessage = "Here are some job recommendations based on your query:"
)

// Scorer re-scores a job list against a resume; satisfied by match.Matcher.
type Scorer interface {
	ScoreBatch(ctx context.Context, resumeText string, list *jobs.List) []jobs.ScoredJob
}

// Router answers chat messages. A nil generator means the rule-based path
// handles everything.
type Router struct {
	generator ai.Generator
	scorer    Scorer
	logger    *zap.Logger
	maxLogLen int
	now       func() time.Time
}

func NewRouter(generator ai.Generator, scorer Scorer, log *zap.Logger, maxLogLength int) *Router {
	if maxLogLength <= 0 {
		maxLogLength = 200
	}
	return &Router{
		generator: generator,
		scorer:    scorer,
		logger:    log,
		maxLogLen: maxLogLength,
		now:       time.Now,
	}
}

// Process answers one message against the current job list. It never returns
// an error: the worst case is a lower-confidence rule-based answer.
func (r *Router) Process(ctx context.Context, message string, list *jobs.List, resumeText string) Response {
	if r.generator != nil {
		resp, err := r.aiChat(ctx, message, list, resumeText)
		if err == nil {
			return resp
		}
		r.logger.Warn("ai chat failed, using fallback", zap.Error(err))
	}

	return r.fallbackChat(ctx, message, list, resumeText)
}

func (r *Router) aiChat(ctx context.Context, message string, list *jobs.List, resumeText string) (Response, error) {
	jobsBlock := "No jobs currently loaded."
	if list.Len() > 0 {
		var lines []string
		for _, job := range list.Head(maxPromptJobs).Items {
			line := fmt.Sprintf("- %s at %s (%s", job.Title, job.Company, job.Location)
			if job.WorkMode == jobs.WorkModeRemote {
				line += ", Remote"
			}
			lines = append(lines, line+")")
		}
		jobsBlock = fmt.Sprintf("Available jobs (showing %d of %d):\n%s",
			len(lines), list.Len(), strings.Join(lines, "\n"))
	}

	resumeBlock := "The user has not uploaded a resume yet."
	if resumeText != "" {
		resumeBlock = "The user has uploaded their resume for AI matching."
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{MESSAGE}}", message)
	prompt = strings.ReplaceAll(prompt, "{{JOBS_BLOCK}}", jobsBlock)
	prompt = strings.ReplaceAll(prompt, "{{RESUME_BLOCK}}", resumeBlock)

	r.logger.Debug("gemini chat request",
		zap.String("prompt_preview", logger.TruncateForLog(prompt, r.maxLogLen)),
	)

	reply, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return Response{}, err
	}

	return Response{Type: TypeHelp, Message: reply, Jobs: []jobs.ScoredJob{}}, nil
}

func (r *Router) fallbackChat(ctx context.Context, message string, list *jobs.List, resumeText string) Response {
	lower := strings.ToLower(message)

	r.logger.Debug("chat fallback processing message",
		zap.String("message_preview", logger.TruncateForLog(message, r.maxLogLen)),
		zap.Int("jobs_available", list.Len()),
	)

	if answer, ok := matchHelpIntent(lower); ok {
		return Response{Type: TypeHelp, Message: answer, Jobs: []jobs.ScoredJob{}}
	}

	filtered := r.applyFilterRules(lower, list)

	var scored []jobs.ScoredJob
	if wantsBestMatch(lower) && resumeText != "" {
		scored = r.scorer.ScoreBatch(ctx, resumeText, filtered)
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].MatchScore > scored[j].MatchScore
		})
		if len(scored) > maxBestMatches {
			scored = scored[:maxBestMatches]
		}
	} else {
		scored = asScored(filtered)
	}

	return shapeJobsResponse(scored, list.Len())
}

// filterRules narrow the job list from independently-triggered message cues.
// They are cumulative and applied in this fixed order.
var filterRules = []struct {
	name  string
	apply func(lower string, l *jobs.List, now time.Time) *jobs.List
}{
	{name: "remote", apply: remoteRule},
	{name: "skill", apply: skillRule},
	{name: "senior", apply: seniorRule},
	{name: "junior", apply: juniorRule},
	{name: "recent", apply: recentRule},
}

func (r *Router) applyFilterRules(lower string, list *jobs.List) *jobs.List {
	filtered := list
	for _, rule := range filterRules {
		next := rule.apply(lower, filtered, r.now())
		if next.Len() != filtered.Len() {
			r.logger.Debug("chat filter step",
				zap.String("name", rule.name),
				zap.Int("initial", filtered.Len()),
				zap.Int("left", next.Len()),
			)
		}
		filtered = next
	}
	return filtered
}

func remoteRule(lower string, l *jobs.List, _ time.Time) *jobs.List {
	if !strings.Contains(lower, "remote") {
		return l
	}
	return l.Where(func(j jobs.Job) bool { return j.WorkMode == jobs.WorkModeRemote })
}

// skillRule applies at most one skill cue per taxonomy category: the first
// keyword of a category found in the message filters the list and ends that
// category's scan. Deliberately kept this narrow.
func skillRule(lower string, l *jobs.List, _ time.Time) *jobs.List {
	filtered := l
	for _, category := range match.SkillTaxonomy {
		for _, skill := range category.Keywords {
			if !strings.Contains(lower, skill) {
				continue
			}
			filtered = filtered.Where(func(j jobs.Job) bool {
				return jobMentionsSkill(j, skill)
			})
			break
		}
	}
	return filtered
}

func jobMentionsSkill(j jobs.Job, skill string) bool {
	for _, s := range j.Skills {
		if strings.Contains(strings.ToLower(s), skill) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(j.Description), skill) ||
		strings.Contains(strings.ToLower(j.Title), skill)
}

func seniorRule(lower string, l *jobs.List, _ time.Time) *jobs.List {
	if !strings.Contains(lower, "senior") {
		return l
	}
	return l.Where(func(j jobs.Job) bool {
		return strings.Contains(strings.ToLower(j.Title), "senior")
	})
}

func juniorRule(lower string, l *jobs.List, _ time.Time) *jobs.List {
	if !strings.Contains(lower, "junior") && !strings.Contains(lower, "entry") {
		return l
	}
	return l.Where(func(j jobs.Job) bool {
		title := strings.ToLower(j.Title)
		return strings.Contains(title, "junior") || strings.Contains(title, "intern")
	})
}

func recentRule(lower string, l *jobs.List, now time.Time) *jobs.List {
	if !strings.Contains(lower, "this week") && !strings.Contains(lower, "recent") {
		return l
	}
	cutoff := now.Add(-recentWindow)
	return l.Where(func(j jobs.Job) bool { return j.PostedDate.After(cutoff) })
}

func wantsBestMatch(lower string) bool {
	return strings.Contains(lower, "best match") ||
		strings.Contains(lower, "highest score") ||
		strings.Contains(lower, "top match")
}

func shapeJobsResponse(scored []jobs.ScoredJob, total int) Response {
	switch {
	case len(scored) == 0:
		return Response{Type: TypeJobs, Message: noResultsMessage, Jobs: []jobs.ScoredJob{}}
	case len(scored) == total:
		return Response{Type: TypeJobs, Message: recommendationsMessage, Jobs: headScored(scored)}
	default:
		plural := "s"
		if len(scored) == 1 {
			plural = ""
		}
		message := fmt.Sprintf("I found %d job%s matching your criteria:", len(scored), plural)
		return Response{Type: TypeJobs, Message: message, Jobs: headScored(scored)}
	}
}

func headScored(scored []jobs.ScoredJob) []jobs.ScoredJob {
	if len(scored) > maxResponseJobs {
		return scored[:maxResponseJobs]
	}
	return scored
}

func asScored(l *jobs.List) []jobs.ScoredJob {
	out := make([]jobs.ScoredJob, 0, l.Len())
	for _, job := range l.Items {
		out = append(out, jobs.ScoredJob{Job: job})
	}
	return out
}
