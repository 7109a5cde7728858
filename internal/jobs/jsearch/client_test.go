package jsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/jobs"
)

const searchPayload = `{
	"status": "OK",
	"data": [
		{
			"job_id": "abc123",
			"job_title": "Go Developer",
			"employer_name": "Acme",
			"employer_logo": "https://logo.example/acme.png",
			"job_city": "Austin",
			"job_state": "TX",
			"job_is_remote": true,
			"job_employment_type": "Contract",
			"job_description": "Build APIs with Go, Docker and PostgreSQL",
			"job_min_salary": 120000,
			"job_max_salary": 150000,
			"job_apply_link": "https://jobs.example/abc123",
			"job_posted_at_datetime_utc": "2025-08-20T10:00:00Z"
		},
		{
			"job_id": "def456",
			"job_title": "Data Analyst",
			"employer_name": "DataCo",
			"job_country": "US",
			"job_is_remote": false,
			"job_description": "SQL reporting"
		}
	]
}`

func TestSearchMapsResponse(t *testing.T) {
	var gotKey, gotQuery, gotRemote string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotQuery = r.URL.Query().Get("query")
		gotRemote = r.URL.Query().Get("remote_jobs_only")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	}))
	defer srv.Close()

	c := New("test-key", zap.NewNop())
	c.http.SetBaseURL(srv.URL)

	list, err := c.Search(context.Background(), jobs.Filters{
		Query:    "golang",
		WorkMode: string(jobs.WorkModeRemote),
	})
	if err != nil {
		t.Fatal(err)
	}

	if gotKey != "test-key" {
		t.Errorf("api key header not sent, got %q", gotKey)
	}
	if gotQuery != "golang" {
		t.Errorf("unexpected query param %q", gotQuery)
	}
	if gotRemote != "true" {
		t.Errorf("expected remote_jobs_only=true, got %q", gotRemote)
	}

	if list.Len() != 2 {
		t.Fatalf("expected 2 jobs, got %d", list.Len())
	}

	first := list.Items[0]
	if first.ID != "abc123" || first.Title != "Go Developer" {
		t.Errorf("unexpected first job: %+v", first)
	}
	if first.Location != "Austin, TX" {
		t.Errorf("unexpected location %q", first.Location)
	}
	if first.WorkMode != jobs.WorkModeRemote {
		t.Errorf("expected remote work mode, got %q", first.WorkMode)
	}
	if first.JobType != jobs.JobType("Contract") {
		t.Errorf("unexpected job type %q", first.JobType)
	}
	if first.Salary != "$120000 - $150000" {
		t.Errorf("unexpected salary %q", first.Salary)
	}
	if first.PostedDate != time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected posted date %v", first.PostedDate)
	}
	if len(first.Skills) == 0 {
		t.Error("expected skills derived from the description")
	}

	second := list.Items[1]
	if second.Location != "US" {
		t.Errorf("expected country fallback, got %q", second.Location)
	}
	if second.Salary != "Not specified" {
		t.Errorf("expected salary placeholder, got %q", second.Salary)
	}
	if second.WorkMode != jobs.WorkModeOnSite {
		t.Errorf("expected on-site default, got %q", second.WorkMode)
	}
}

func TestSearchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("test-key", zap.NewNop())
	c.http.SetBaseURL(srv.URL)

	if _, err := c.Search(context.Background(), jobs.Filters{}); err == nil {
		t.Fatal("expected an error for a non-2xx status")
	}
}

func TestSearchDefaults(t *testing.T) {
	var gotQuery, gotDate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotDate = r.URL.Query().Get("date_posted")
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c := New("test-key", zap.NewNop())
	c.http.SetBaseURL(srv.URL)

	list, err := c.Search(context.Background(), jobs.Filters{})
	if err != nil {
		t.Fatal(err)
	}
	if list.Len() != 0 {
		t.Errorf("expected an empty list, got %d", list.Len())
	}
	if gotQuery != defaultQuery {
		t.Errorf("expected the default query, got %q", gotQuery)
	}
	if gotDate != "all" {
		t.Errorf("expected date_posted=all, got %q", gotDate)
	}
}

func TestMapJobEmploymentTypeDefault(t *testing.T) {
	item := gjson.Parse(`{"job_id": "x", "job_title": "Dev", "job_description": ""}`)

	job := mapJob(item)
	if job.JobType != jobs.JobTypeFullTime {
		t.Errorf("expected the full-time default, got %q", job.JobType)
	}
}
