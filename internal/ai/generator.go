package ai

import "context"

// Generator is the single capability the scoring and chat components need
// from a language model. A nil Generator means "no model configured" and the
// consumers degrade to their rule-based paths.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
