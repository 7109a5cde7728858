package match

import (
	"context"
	"sync"

	"github.com/akhila-3010/job-tracker/internal/jobs"
)

// ScoreBatch scores every posting in the list concurrently and returns the
// results in input order. Jobs are scored independently: one posting's AI
// failure degrades only that posting to the deterministic path.
func (m *Matcher) ScoreBatch(ctx context.Context, resumeText string, list *jobs.List) []jobs.ScoredJob {
	scored := make([]jobs.ScoredJob, list.Len())

	var wg sync.WaitGroup
	for i, job := range list.Items {
		wg.Add(1)
		go func(i int, job jobs.Job) {
			defer wg.Done()
			result := m.Score(ctx, resumeText, job)
			scored[i] = jobs.ScoredJob{
				Job:              job,
				MatchScore:       result.Score,
				MatchExplanation: result.Explanation,
				MatchedSkills:    result.MatchedSkills,
			}
		}(i, job)
	}
	wg.Wait()

	return scored
}
