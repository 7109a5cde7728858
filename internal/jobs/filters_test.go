package jobs

import (
	"testing"
	"time"
)

func TestApplyFilters(t *testing.T) {
	now := time.Now()
	day := 24 * time.Hour
	list := NewList(
		Job{
			ID:          "1",
			Title:       "Senior React Developer",
			Company:     "Acme",
			Location:    "New York, NY",
			WorkMode:    WorkModeRemote,
			JobType:     JobTypeFullTime,
			Skills:      []string{"React", "TypeScript"},
			Description: "Frontend work",
			PostedDate:  now.Add(-2 * day),
		},
		Job{
			ID:          "2",
			Title:       "Backend Engineer",
			Company:     "DataCo",
			Location:    "Austin, TX",
			WorkMode:    WorkModeOnSite,
			JobType:     JobTypeContract,
			Skills:      []string{"Python", "PostgreSQL"},
			Description: "API development",
			PostedDate:  now.Add(-20 * day),
		},
		Job{
			ID:          "3",
			Title:       "DevOps Engineer",
			Company:     "CloudNine",
			Location:    "Remote",
			WorkMode:    WorkModeRemote,
			JobType:     JobTypeFullTime,
			Skills:      []string{"AWS", "Kubernetes"},
			Description: "Infrastructure automation",
			PostedDate:  now.Add(-40 * day),
		},
	)

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{name: "no constraints", filters: Filters{}, want: []string{"1", "2", "3"}},
		{name: "query matches title", filters: Filters{Query: "react"}, want: []string{"1"}},
		{name: "query matches company", filters: Filters{Query: "dataco"}, want: []string{"2"}},
		{name: "skills any-of", filters: Filters{Skills: []string{"python", "aws"}}, want: []string{"2", "3"}},
		{name: "posted this week", filters: Filters{DatePosted: DatePostedWeek}, want: []string{"1"}},
		{name: "posted this month", filters: Filters{DatePosted: DatePostedMonth}, want: []string{"1", "2"}},
		{name: "job type", filters: Filters{JobType: "contract"}, want: []string{"2"}},
		{name: "job type all", filters: Filters{JobType: "all"}, want: []string{"1", "2", "3"}},
		{name: "work mode", filters: Filters{WorkMode: "remote"}, want: []string{"1", "3"}},
		{name: "location substring", filters: Filters{Location: "austin"}, want: []string{"2"}},
		{name: "combined", filters: Filters{WorkMode: "Remote", DatePosted: DatePostedWeek}, want: []string{"1"}},
		{name: "nothing matches", filters: Filters{Query: "haskell"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := list.Apply(tt.filters, now)
			if got.Len() != len(tt.want) {
				t.Fatalf("expected %d jobs, got %d", len(tt.want), got.Len())
			}
			for i, id := range tt.want {
				if got.Items[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got.Items[i].ID)
				}
			}
		})
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	now := time.Now()
	list := NewList(
		Job{ID: "b", Title: "Engineer", WorkMode: WorkModeRemote},
		Job{ID: "a", Title: "Engineer", WorkMode: WorkModeRemote},
		Job{ID: "c", Title: "Engineer", WorkMode: WorkModeOnSite},
	)

	got := list.Apply(Filters{WorkMode: "Remote"}, now)
	if got.Len() != 2 || got.Items[0].ID != "b" || got.Items[1].ID != "a" {
		t.Errorf("filtering must keep input order, got %+v", got.Items)
	}
}

func TestCacheKeyStable(t *testing.T) {
	f := Filters{Query: "go", Skills: []string{"Docker"}, WorkMode: "Remote"}

	if f.CacheKey() != f.CacheKey() {
		t.Error("cache key must be deterministic")
	}
	if f.CacheKey() == (Filters{}).CacheKey() {
		t.Error("different filters must produce different keys")
	}
}

func TestFindByID(t *testing.T) {
	list := Static(time.Now())

	job, found := list.FindByID("job-3")
	if !found || job.ID != "job-3" {
		t.Fatalf("expected job-3, got %+v found=%v", job, found)
	}

	if _, found := list.FindByID("nope"); found {
		t.Error("unexpected hit for unknown id")
	}
}

func TestStaticDataset(t *testing.T) {
	now := time.Now()
	list := Static(now)

	if list.Len() != 15 {
		t.Fatalf("expected 15 postings, got %d", list.Len())
	}
	for _, job := range list.Items {
		if job.ID == "" || job.Title == "" || job.Company == "" {
			t.Errorf("incomplete posting: %+v", job)
		}
		if len(job.Skills) == 0 {
			t.Errorf("posting %s has no skills", job.ID)
		}
		if job.PostedDate.After(now) {
			t.Errorf("posting %s dated in the future", job.ID)
		}
	}
}
