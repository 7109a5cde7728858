// Package jsearch implements the JSearch (RapidAPI) upstream job source.
package jsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/jobs"
)

const (
	apiHost        = "jsearch.p.rapidapi.com"
	defaultQuery   = "software developer"
	requestTimeout = 10 * time.Second
)

type Client struct {
	http   *resty.Client
	apiKey string
	logger *zap.Logger
}

func New(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL("https://" + apiHost).
			SetTimeout(requestTimeout),
		apiKey: apiKey,
		logger: logger,
	}
}

// Search queries the JSearch API and maps the payload into postings.
func (c *Client) Search(ctx context.Context, f jobs.Filters) (*jobs.List, error) {
	query := f.Query
	if query == "" {
		query = defaultQuery
	}

	datePosted := f.DatePosted
	if datePosted == "" {
		datePosted = "all"
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-RapidAPI-Key", c.apiKey).
		SetHeader("X-RapidAPI-Host", apiHost).
		SetQueryParams(map[string]string{
			"query":       query,
			"page":        "1",
			"num_pages":   "1",
			"date_posted": datePosted,
		})

	if f.Location != "" {
		req.SetQueryParam("location", f.Location)
	}
	if f.WorkMode == string(jobs.WorkModeRemote) {
		req.SetQueryParam("remote_jobs_only", "true")
	}

	resp, err := req.Get("/search")
	if err != nil {
		return nil, fmt.Errorf("jsearch request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("jsearch api: bad status %s", resp.Status())
	}

	list := jobs.NewList()
	gjson.GetBytes(resp.Body(), "data").ForEach(func(_, item gjson.Result) bool {
		list.Items = append(list.Items, mapJob(item))
		return true
	})

	c.logger.Debug("got jsearch response", zap.Int("count", list.Len()))

	return list, nil
}

func mapJob(item gjson.Result) jobs.Job {
	job := jobs.Job{
		ID:          item.Get("job_id").String(),
		Title:       item.Get("job_title").String(),
		Company:     item.Get("employer_name").String(),
		Location:    location(item),
		WorkMode:    jobs.WorkModeOnSite,
		JobType:     jobs.JobTypeFullTime,
		Description: item.Get("job_description").String(),
		Salary:      salary(item),
		ApplyURL:    item.Get("job_apply_link").String(),
		CompanyLogo: item.Get("employer_logo").String(),
	}

	if item.Get("job_is_remote").Bool() {
		job.WorkMode = jobs.WorkModeRemote
	}
	if t := item.Get("job_employment_type").String(); t != "" {
		job.JobType = jobs.JobType(t)
	}
	if posted := item.Get("job_posted_at_datetime_utc").String(); posted != "" {
		if ts, err := time.Parse(time.RFC3339, posted); err == nil {
			job.PostedDate = ts
		}
	}

	job.Skills = jobs.DeriveSkills(job.Description)

	return job
}

func location(item gjson.Result) string {
	if city := item.Get("job_city").String(); city != "" {
		return fmt.Sprintf("%s, %s", city, item.Get("job_state").String())
	}
	return item.Get("job_country").String()
}

func salary(item gjson.Result) string {
	minSalary := item.Get("job_min_salary")
	maxSalary := item.Get("job_max_salary")
	if !minSalary.Exists() || !maxSalary.Exists() {
		return "Not specified"
	}
	return fmt.Sprintf("$%.0f - $%.0f", minSalary.Float(), maxSalary.Float())
}
