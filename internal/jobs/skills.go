package jobs

import "strings"

// displaySkills are the display-cased keywords scanned when an upstream
// posting arrives without a skill list.
var displaySkills = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Go", "Rust", "C++", "C#",
	"React", "Vue.js", "Angular", "Node.js", "Express", "Django", "Flask",
	"Spring Boot", "Ruby on Rails", "PHP", "Laravel",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch",
	"GraphQL", "REST", "gRPC", "Microservices",
	"Git", "CI/CD", "Jenkins", "GitHub Actions",
	"Machine Learning", "TensorFlow", "PyTorch", "NLP",
	"Figma", "UI/UX", "CSS", "HTML", "Sass",
	"Agile", "Scrum", "Leadership",
}

const maxDerivedSkills = 8

// DeriveSkills extracts a capped, display-cased skill list from a free-text
// job description.
func DeriveSkills(description string) []string {
	lower := strings.ToLower(description)
	found := make([]string, 0, maxDerivedSkills)
	for _, skill := range displaySkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) == maxDerivedSkills {
				break
			}
		}
	}
	return found
}
