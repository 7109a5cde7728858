package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/store"
)

type applicationsHandler struct {
	store  *store.Store
	logger *zap.Logger
}

type createApplicationRequest struct {
	JobID    string `json:"jobId"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

func (h *applicationsHandler) list(c *gin.Context) {
	apps, err := h.store.ListApplications(c.Request.Context(), userID(c))
	if err != nil {
		h.logger.Error("listing applications failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "total": len(apps)})
}

func (h *applicationsHandler) create(c *gin.Context) {
	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.JobTitle) == "" {
		writeError(c, http.StatusBadRequest, "Job title is required")
		return
	}

	now := time.Now().UTC()
	app := store.Application{
		ID:        uuid.NewString(),
		JobID:     req.JobID,
		JobTitle:  req.JobTitle,
		Company:   req.Company,
		Location:  req.Location,
		Status:    "applied",
		Notes:     req.Notes,
		AppliedAt: now,
		UpdatedAt: now,
	}
	if err := h.store.SaveApplication(c.Request.Context(), userID(c), app); err != nil {
		h.logger.Error("saving application failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to save application")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "application": app})
}

func (h *applicationsHandler) update(c *gin.Context) {
	var update store.ApplicationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	app, found, err := h.store.UpdateApplication(c.Request.Context(), userID(c), c.Param("id"), update)
	if err != nil {
		h.logger.Error("updating application failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to update application")
		return
	}
	if !found {
		writeError(c, http.StatusNotFound, "Application not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

func (h *applicationsHandler) remove(c *gin.Context) {
	if err := h.store.DeleteApplication(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.logger.Error("deleting application failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to delete application")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
