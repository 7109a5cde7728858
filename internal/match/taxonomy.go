// Package match scores how well a resume fits a job posting. Scoring is a
// total function: when the AI path is unavailable or misbehaves, a
// deterministic rule-based scorer always produces a result.
package match

// SkillCategory groups lowercase taxonomy keywords under a category name.
type SkillCategory struct {
	Name     string
	Keywords []string
}

// SkillTaxonomy is the static category list used for skill extraction and for
// the chat router's skill-cue scan. Slice, not map: iteration order is part of
// the contract (extraction output is taxonomy-ordered).
var SkillTaxonomy = []SkillCategory{
	{Name: "frontend", Keywords: []string{"react", "vue", "angular", "javascript", "typescript", "html", "css", "sass", "tailwind", "next.js", "redux", "webpack"}},
	{Name: "backend", Keywords: []string{"node.js", "python", "java", "go", "rust", "ruby", "php", "c#", "django", "flask", "spring", "express", "fastify"}},
	{Name: "database", Keywords: []string{"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "sql", "nosql", "dynamodb", "firebase"}},
	{Name: "devops", Keywords: []string{"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ci/cd", "jenkins", "github actions"}},
	{Name: "mobile", Keywords: []string{"react native", "flutter", "swift", "kotlin", "ios", "android"}},
	{Name: "data", Keywords: []string{"machine learning", "tensorflow", "pytorch", "pandas", "numpy", "spark", "data science", "nlp"}},
	{Name: "design", Keywords: []string{"figma", "sketch", "ui/ux", "adobe xd", "prototyping", "user research"}},
}
