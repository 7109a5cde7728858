package match

import (
	"math"
	"strings"
)

// Level is a coarse experience tier detected from free text.
type Level string

const (
	LevelSenior Level = "senior"
	LevelMid    Level = "mid"
	LevelJunior Level = "junior"
	LevelAny    Level = "any"
)

// Tier phrase sets are not mutually exclusive in raw text ("senior" postings
// often mention "3-5 years" for another role), so detection order matters:
// senior first, then junior, then mid.
var (
	seniorPhrases = []string{"senior", "lead", "principal", "10+ years", "8+ years"}
	juniorPhrases = []string{"junior", "entry", "intern", "0-2 years", "1-2 years"}
	midPhrases    = []string{"mid", "3-5 years", "2-4 years"}
)

// ExtractSkills returns every taxonomy keyword contained in the text, in
// taxonomy order, without duplicates.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var found []string

	for _, category := range SkillTaxonomy {
		for _, keyword := range category.Keywords {
			if seen[keyword] {
				continue
			}
			if strings.Contains(lower, keyword) {
				seen[keyword] = true
				found = append(found, keyword)
			}
		}
	}

	return found
}

// DetectExperienceLevel classifies text into an experience tier, defaulting
// to LevelAny when no tier phrase is present.
func DetectExperienceLevel(text string) Level {
	lower := strings.ToLower(text)

	if containsAny(lower, seniorPhrases) {
		return LevelSenior
	}
	if containsAny(lower, juniorPhrases) {
		return LevelJunior
	}
	if containsAny(lower, midPhrases) {
		return LevelMid
	}
	return LevelAny
}

// TitleRelevance scores 0-100 how much of the job title appears in the
// resume. Title tokens of length <= 2 are noise and ignored; a title with no
// usable tokens scores a neutral 50.
func TitleRelevance(resumeText, jobTitle string) int {
	lowerResume := strings.ToLower(resumeText)

	var total, matched int
	for _, word := range strings.Fields(strings.ToLower(jobTitle)) {
		if len(word) <= 2 {
			continue
		}
		total++
		if strings.Contains(lowerResume, word) {
			matched++
		}
	}

	if total == 0 {
		return 50
	}
	return int(math.Round(float64(matched) / float64(total) * 100))
}

func containsAny(lower string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
