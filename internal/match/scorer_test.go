package match

import (
	"reflect"
	"strings"
	"testing"

	"github.com/akhila-3010/job-tracker/internal/jobs"
)

func TestFallbackStrongSeniorMatch(t *testing.T) {
	t.Parallel()

	resume := "Senior React developer, 8 years, AWS, TypeScript"
	job := jobs.Job{
		ID:          "j1",
		Title:       "Senior React Developer",
		Skills:      []string{"React", "TypeScript", "AWS"},
		Description: "Senior role, 8+ years required",
	}

	result := Fallback(resume, job)

	if result.Score < 85 {
		t.Fatalf("expected score >= 85, got %d", result.Score)
	}
	if result.ExperienceScore != 100 {
		t.Fatalf("expected experience score 100, got %d", result.ExperienceScore)
	}
	if !reflect.DeepEqual(result.MatchedSkills, []string{"React", "TypeScript", "AWS"}) {
		t.Fatalf("expected all job skills matched, got %v", result.MatchedSkills)
	}
	if !strings.HasPrefix(result.Explanation, "🎯 Excellent match!") {
		t.Fatalf("expected excellent-match lead sentence, got %q", result.Explanation)
	}
}

func TestFallbackFarExperienceMismatch(t *testing.T) {
	t.Parallel()

	resume := "Entry level, no experience"
	job := jobs.Job{
		Skills:      []string{"Kubernetes", "Go"},
		Description: "Senior DevOps, 10+ years",
	}

	result := Fallback(resume, job)

	if result.ExperienceScore != 30 {
		t.Fatalf("expected experience score 30 for junior vs senior, got %d", result.ExperienceScore)
	}
}

func TestFallbackNeutralScoreWhenJobHasNoSkills(t *testing.T) {
	t.Parallel()

	// Description yields no taxonomy skills either, so skillScore falls back
	// to the neutral 50 regardless of resume content.
	for _, resume := range []string{"", "React, AWS, Kubernetes expert"} {
		result := Fallback(resume, jobs.Job{Title: "Gardener", Description: "Tend the gardens."})
		if result.SkillScore != 50 {
			t.Fatalf("expected neutral skill score 50, got %d (resume %q)", result.SkillScore, resume)
		}
	}
}

func TestFallbackZeroSkillScoreWhenResumeEmptyButJobHasSkills(t *testing.T) {
	t.Parallel()

	result := Fallback("", jobs.Job{Skills: []string{"React", "Go"}, Description: "Build things"})
	if result.SkillScore != 0 {
		t.Fatalf("expected skill score 0, got %d", result.SkillScore)
	}
}

func TestFallbackScoreAlwaysInRange(t *testing.T) {
	t.Parallel()

	resumes := []string{"", "senior react aws typescript kubernetes docker python", "plumber"}
	postings := []jobs.Job{
		{},
		{Title: "Senior React Developer", Skills: []string{"React"}, Description: "senior"},
		{Title: "x", Description: "intern"},
	}

	for _, resume := range resumes {
		for _, job := range postings {
			result := Fallback(resume, job)
			if result.Score < 0 || result.Score > 100 {
				t.Fatalf("score out of range: %d", result.Score)
			}
			if result.Explanation == "" {
				t.Fatal("explanation must never be empty")
			}
		}
	}
}

func TestFallbackIsIdempotent(t *testing.T) {
	t.Parallel()

	resume := "Mid-level python developer, 3-5 years, docker"
	job := jobs.Job{Title: "Python Developer", Skills: []string{"Python", "Docker", "AWS"}, Description: "3-5 years"}

	first := Fallback(resume, job)
	second := Fallback(resume, job)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestFallbackMatchedSkillsSubsetOfJobSkills(t *testing.T) {
	t.Parallel()

	job := jobs.Job{Skills: []string{"React", "TypeScript", "Terraform"}, Description: ""}
	result := Fallback("react and typescript all day", job)

	jobSet := make(map[string]bool)
	for _, s := range job.Skills {
		jobSet[strings.ToLower(s)] = true
	}
	for _, s := range result.MatchedSkills {
		if !jobSet[strings.ToLower(s)] {
			t.Fatalf("matched skill %q not in job skills", s)
		}
	}
	if len(result.MatchedSkills) != 2 {
		t.Fatalf("expected 2 matched skills, got %v", result.MatchedSkills)
	}
}

func TestFallbackResumeSkillsCappedAtTen(t *testing.T) {
	t.Parallel()

	resume := "react vue angular javascript typescript html css sass tailwind next.js redux webpack"
	result := Fallback(resume, jobs.Job{Skills: []string{"React"}})

	if len(result.ResumeSkills) != 10 {
		t.Fatalf("expected resume skills capped at 10, got %d", len(result.ResumeSkills))
	}
}

func TestFallbackLimitedOverlapExplanation(t *testing.T) {
	t.Parallel()

	result := Fallback("plumber with no tech background", jobs.Job{
		Title:       "Platform Engineer",
		Skills:      []string{"Kubernetes", "Terraform", "AWS"},
		Description: "cloud infra",
	})

	if !strings.Contains(result.Explanation, "Limited skill overlap - consider learning Kubernetes, Terraform") {
		t.Fatalf("expected limited-overlap hint, got %q", result.Explanation)
	}
}
