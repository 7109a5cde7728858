package server

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/jobs"
	"github.com/akhila-3010/job-tracker/internal/match"
	"github.com/akhila-3010/job-tracker/internal/store"
)

const defaultBestMatchLimit = 8

type jobsHandler struct {
	source  *jobs.Source
	matcher *match.Matcher
	store   *store.Store
	logger  *zap.Logger
}

func filtersFromQuery(c *gin.Context) jobs.Filters {
	f := jobs.Filters{
		Query:      c.Query("query"),
		DatePosted: c.Query("datePosted"),
		JobType:    c.Query("jobType"),
		WorkMode:   c.Query("workMode"),
		Location:   c.Query("location"),
	}
	if skills := c.Query("skills"); skills != "" {
		for _, s := range strings.Split(skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Skills = append(f.Skills, s)
			}
		}
	}
	return f
}

func (h *jobsHandler) list(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.source.Fetch(ctx, filtersFromQuery(c))
	if err != nil {
		h.logger.Error("fetching jobs failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}

	resume, hasResume, err := h.store.GetResume(ctx, userID(c))
	if err != nil {
		h.logger.Warn("resume lookup failed", zap.Error(err))
	}

	if hasResume && resume.Text != "" {
		scored := h.scoreSorted(ctx, resume.Text, list)
		if minScore, err := strconv.Atoi(c.Query("minScore")); err == nil {
			kept := scored[:0]
			for _, job := range scored {
				if job.MatchScore >= minScore {
					kept = append(kept, job)
				}
			}
			scored = kept
		}
		c.JSON(http.StatusOK, gin.H{"jobs": scored, "total": len(scored), "hasResume": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": list.Items, "total": list.Len(), "hasResume": hasResume})
}

func (h *jobsHandler) get(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.source.Fetch(ctx, jobs.Filters{})
	if err != nil {
		h.logger.Error("fetching jobs failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to fetch job")
		return
	}

	job, found := list.FindByID(c.Param("id"))
	if !found {
		writeError(c, http.StatusNotFound, "Job not found")
		return
	}

	resume, hasResume, err := h.store.GetResume(ctx, userID(c))
	if err != nil {
		h.logger.Warn("resume lookup failed", zap.Error(err))
	}
	if hasResume && resume.Text != "" {
		scored := h.matcher.ScoreBatch(ctx, resume.Text, jobs.NewList(job))
		c.JSON(http.StatusOK, scored[0])
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *jobsHandler) bestMatches(c *gin.Context) {
	ctx := c.Request.Context()

	resume, hasResume, err := h.store.GetResume(ctx, userID(c))
	if err != nil {
		h.logger.Warn("resume lookup failed", zap.Error(err))
	}
	if !hasResume || resume.Text == "" {
		c.JSON(http.StatusOK, gin.H{
			"jobs":    []jobs.ScoredJob{},
			"message": "Upload a resume to see your best matches",
		})
		return
	}

	list, err := h.source.Fetch(ctx, jobs.Filters{})
	if err != nil {
		h.logger.Error("fetching jobs failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to get best matches")
		return
	}

	limit := defaultBestMatchLimit
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		limit = n
	}

	scored := h.scoreSorted(ctx, resume.Text, list)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	c.JSON(http.StatusOK, gin.H{"jobs": scored, "hasResume": true})
}

func (h *jobsHandler) clearCache(c *gin.Context) {
	if err := h.store.ClearJobs(c.Request.Context()); err != nil {
		h.logger.Error("clearing job cache failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to clear cache")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job cache cleared successfully"})
}

func (h *jobsHandler) scoreSorted(ctx context.Context, resumeText string, list *jobs.List) []jobs.ScoredJob {
	scored := h.matcher.ScoreBatch(ctx, resumeText, list)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})
	return scored
}
