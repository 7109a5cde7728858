package chat

import "strings"

// helpIntent pairs trigger patterns with a canned product answer. An intent
// fires when at least minPatternHits of its patterns are substrings of the
// lowercased message; requiring two avoids false positives from single common
// words. Intents are evaluated in declaration order, first hit wins.
type helpIntent struct {
	patterns []string
	answer   string
}

const minPatternHits = 2

var helpIntents = []helpIntent{
	{
		patterns: []string{"where", "find", "see", "applications", "applied", "tracking"},
		answer:   `You can see all your applications in the "Applications" tab at the top of the page. There you'll find a timeline of all jobs you've applied to, with their current status.`,
	},
	{
		patterns: []string{"upload", "resume", "cv"},
		answer:   `To upload or update your resume, click on the user icon in the top right corner and select "Upload Resume". You can upload PDF or TXT files.`,
	},
	{
		patterns: []string{"how", "matching", "score", "work"},
		answer:   "Our matching algorithm analyzes your resume and compares it with job requirements. We look at: 1) Skill overlap (45% weight), 2) Experience level alignment (30% weight), and 3) Job title relevance (25% weight). Higher scores mean better matches!",
	},
	{
		patterns: []string{"filter", "search", "find jobs"},
		answer:   "Use the filter panel on the left to narrow down jobs. You can filter by job title, skills, date posted, job type (full-time, part-time, etc.), work mode (remote, hybrid, on-site), and location.",
	},
}

// matchHelpIntent returns the canned answer for the first firing intent.
func matchHelpIntent(lowerMessage string) (string, bool) {
	for _, intent := range helpIntents {
		hits := 0
		for _, pattern := range intent.patterns {
			if strings.Contains(lowerMessage, pattern) {
				hits++
			}
		}
		if hits >= minPatternHits {
			return intent.answer, true
		}
	}
	return "", false
}

// Suggestion is a canned prompt offered to the client UI.
type Suggestion struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

func Suggestions() []Suggestion {
	return []Suggestion{
		{Text: "Show me remote React jobs", Category: "search"},
		{Text: "Find senior roles posted this week", Category: "search"},
		{Text: "Which jobs have highest match scores?", Category: "match"},
		{Text: "Give me UX jobs requiring Figma", Category: "search"},
		{Text: "Where do I see my applications?", Category: "help"},
		{Text: "How do I upload my resume?", Category: "help"},
		{Text: "How does matching work?", Category: "help"},
		{Text: "Show me Python backend jobs", Category: "search"},
	}
}
