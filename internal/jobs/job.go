package jobs

import "time"

// WorkMode classifies where the work happens.
type WorkMode string

const (
	WorkModeRemote WorkMode = "Remote"
	WorkModeHybrid WorkMode = "Hybrid"
	WorkModeOnSite WorkMode = "On-site"
)

// JobType classifies the employment arrangement.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// Job is a single posting as served to the client. Postings are immutable
// once fetched; scoring produces a ScoredJob view instead of mutating them.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	WorkMode    WorkMode  `json:"workMode"`
	JobType     JobType   `json:"jobType"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Salary      string    `json:"salary"`
	PostedDate  time.Time `json:"postedDate"`
	ApplyURL    string    `json:"applyUrl"`
	CompanyLogo string    `json:"companyLogo,omitempty"`
}

// ScoredJob is a posting with resume-match fields attached. It is a derived,
// transient view and never the system of record.
type ScoredJob struct {
	Job
	MatchScore       int      `json:"matchScore"`
	MatchExplanation string   `json:"matchExplanation,omitempty"`
	MatchedSkills    []string `json:"matchedSkills,omitempty"`
}

// List holds an ordered collection of postings.
type List struct {
	Items []Job `json:"items"`
}

func NewList(items ...Job) *List {
	return &List{Items: items}
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

func (l *List) FindByID(id string) (Job, bool) {
	for _, job := range l.Items {
		if job.ID == id {
			return job, true
		}
	}
	return Job{}, false
}

// Where returns a new list keeping only postings the predicate accepts.
// The receiver is left untouched.
func (l *List) Where(keep func(Job) bool) *List {
	out := &List{Items: make([]Job, 0, len(l.Items))}
	for _, job := range l.Items {
		if keep(job) {
			out.Items = append(out.Items, job)
		}
	}
	return out
}

// Head returns a new list with at most n leading postings.
func (l *List) Head(n int) *List {
	if n < 0 || n >= len(l.Items) {
		return &List{Items: l.Items}
	}
	return &List{Items: l.Items[:n]}
}
