package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/akhila-3010/job-tracker/internal/jobs"
)

// Result is the outcome of scoring one resume against one posting.
type Result struct {
	Score         int      `json:"score"`
	Explanation   string   `json:"explanation"`
	MatchedSkills []string `json:"matchedSkills"`
	ResumeSkills  []string `json:"resumeSkills"`

	// Component scores, kept for observability; not part of the wire shape.
	SkillScore      int `json:"-"`
	ExperienceScore int `json:"-"`
	TitleScore      int `json:"-"`
}

// Component weights of the deterministic score.
const (
	skillWeight      = 0.45
	experienceWeight = 0.30
	titleWeight      = 0.25
)

const maxResumeSkills = 10

const defaultExplanation = "This role could be a fit based on your profile"

// Fallback is the deterministic scorer. It never fails: well-formed string
// inputs always produce a valid Result, which is what makes it a safe floor
// under the AI path.
func Fallback(resumeText string, job jobs.Job) Result {
	resumeSkills := ExtractSkills(resumeText)

	jobSkills := job.Skills
	if len(jobSkills) == 0 {
		jobSkills = ExtractSkills(job.Description)
	}

	skillScore := skillOverlap(resumeSkills, jobSkills)
	experienceScore := experienceMatch(resumeText, job.Description)
	titleScore := TitleRelevance(resumeText, job.Title)

	score := clampScore(int(math.Round(
		float64(skillScore)*skillWeight +
			float64(experienceScore)*experienceWeight +
			float64(titleScore)*titleWeight,
	)))

	matched := matchedSkills(resumeSkills, jobSkills)

	return Result{
		Score:           score,
		Explanation:     explain(score, experienceScore, titleScore, matched, jobSkills),
		MatchedSkills:   matched,
		ResumeSkills:    head(resumeSkills, maxResumeSkills),
		SkillScore:      skillScore,
		ExperienceScore: experienceScore,
		TitleScore:      titleScore,
	}
}

// skillOverlap scores the fraction of job skills present in the resume.
// A posting without skills scores a neutral 50.
func skillOverlap(resumeSkills, jobSkills []string) int {
	if len(jobSkills) == 0 {
		return 50
	}

	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s)] = true
	}

	matched := 0
	for _, s := range jobSkills {
		if resumeSet[strings.ToLower(s)] {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(len(jobSkills)) * 100))
}

// experienceMatch compares detected tiers. Exact matches and "any" on either
// side score 100; adjacent tiers score 70 (mid/senior) or 60 (junior/mid);
// everything else is a far mismatch at 30.
func experienceMatch(resumeText, jobDescription string) int {
	resumeLevel := DetectExperienceLevel(resumeText)
	jobLevel := DetectExperienceLevel(jobDescription)

	if resumeLevel == jobLevel || jobLevel == LevelAny || resumeLevel == LevelAny {
		return 100
	}

	if (resumeLevel == LevelMid && jobLevel == LevelSenior) || (resumeLevel == LevelSenior && jobLevel == LevelMid) {
		return 70
	}
	if (resumeLevel == LevelJunior && jobLevel == LevelMid) || (resumeLevel == LevelMid && jobLevel == LevelJunior) {
		return 60
	}

	return 30
}

func matchedSkills(resumeSkills, jobSkills []string) []string {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s)] = true
	}

	matched := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if resumeSet[strings.ToLower(s)] {
			matched = append(matched, s)
		}
	}
	return matched
}

func explain(score, experienceScore, titleScore int, matched, jobSkills []string) string {
	var sentences []string

	switch {
	case len(matched) > 5:
		sentences = append(sentences, fmt.Sprintf("Strong match on %d skills including %s, and more", len(matched), strings.Join(head(matched, 5), ", ")))
	case len(matched) > 2:
		sentences = append(sentences, fmt.Sprintf("Good skill alignment: %s", strings.Join(matched, ", ")))
	case len(matched) > 0:
		sentences = append(sentences, fmt.Sprintf("Matches key skills: %s", strings.Join(matched, ", ")))
	case len(jobSkills) > 0:
		sentences = append(sentences, fmt.Sprintf("Limited skill overlap - consider learning %s", strings.Join(head(jobSkills, 2), ", ")))
	}

	switch {
	case experienceScore >= 80:
		sentences = append(sentences, "Your experience level is an excellent fit")
	case experienceScore >= 60:
		sentences = append(sentences, "Experience aligns with requirements")
	case experienceScore >= 40:
		sentences = append(sentences, "Some experience gap, but achievable with learning")
	}

	switch {
	case titleScore >= 70:
		sentences = append(sentences, "Job title closely matches your background")
	case titleScore >= 50:
		sentences = append(sentences, "Related role to your experience")
	}

	switch {
	case score >= 80:
		sentences = append([]string{"🎯 Excellent match!"}, sentences...)
	case score >= 60:
		sentences = append([]string{"✓ Good match"}, sentences...)
	}

	if len(sentences) == 0 {
		return defaultExplanation
	}
	return strings.Join(sentences, ". ")
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func head(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
