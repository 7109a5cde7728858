package jobs

import (
	"encoding/json"
	"strings"
	"time"
)

// Filters narrows a job search. Zero values mean "no constraint".
type Filters struct {
	Query      string   `json:"query,omitempty" mapstructure:"query"`
	Skills     []string `json:"skills,omitempty" mapstructure:"skills"`
	DatePosted string   `json:"datePosted,omitempty" mapstructure:"date-posted"`
	JobType    string   `json:"jobType,omitempty" mapstructure:"job-type"`
	WorkMode   string   `json:"workMode,omitempty" mapstructure:"work-mode"`
	Location   string   `json:"location,omitempty" mapstructure:"location"`
}

// Date windows accepted in DatePosted. Anything else means no date constraint.
const (
	DatePostedDay   = "day"
	DatePostedWeek  = "week"
	DatePostedMonth = "month"
)

// CacheKey returns a stable key for caching results of this filter set.
func (f Filters) CacheKey() string {
	b, err := json.Marshal(f)
	if err != nil {
		return "all"
	}
	return string(b)
}

// Apply returns the postings matching every set constraint, evaluated
// against the provided reference time for date windows.
func (l *List) Apply(f Filters, now time.Time) *List {
	return l.Where(func(job Job) bool {
		return matches(job, f, now)
	})
}

func matches(job Job, f Filters, now time.Time) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Description), q) &&
			!strings.Contains(strings.ToLower(job.Company), q) {
			return false
		}
	}

	if len(f.Skills) > 0 && !hasAnySkill(job, f.Skills) {
		return false
	}

	if window := postedWindow(f.DatePosted); window > 0 {
		if now.Sub(job.PostedDate) > window {
			return false
		}
	}

	if t := strings.TrimSpace(f.JobType); t != "" && !strings.EqualFold(t, "all") {
		if !strings.EqualFold(string(job.JobType), t) {
			return false
		}
	}

	if m := strings.TrimSpace(f.WorkMode); m != "" && !strings.EqualFold(m, "all") {
		if !strings.EqualFold(string(job.WorkMode), m) {
			return false
		}
	}

	if loc := strings.ToLower(strings.TrimSpace(f.Location)); loc != "" {
		if !strings.Contains(strings.ToLower(job.Location), loc) {
			return false
		}
	}

	return true
}

func hasAnySkill(job Job, wanted []string) bool {
	for _, w := range wanted {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		for _, s := range job.Skills {
			if strings.Contains(strings.ToLower(s), w) {
				return true
			}
		}
	}
	return false
}

func postedWindow(datePosted string) time.Duration {
	switch datePosted {
	case DatePostedDay:
		return 24 * time.Hour
	case DatePostedWeek:
		return 7 * 24 * time.Hour
	case DatePostedMonth:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}
