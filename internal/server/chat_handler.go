package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/chat"
	"github.com/akhila-3010/job-tracker/internal/jobs"
	"github.com/akhila-3010/job-tracker/internal/store"
)

type chatHandler struct {
	source *jobs.Source
	router *chat.Router
	store  *store.Store
	logger *zap.Logger
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *chatHandler) process(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeError(c, http.StatusBadRequest, "Message is required")
		return
	}

	list, err := h.source.Fetch(ctx, jobs.Filters{})
	if err != nil {
		h.logger.Error("fetching jobs for chat failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to process message")
		return
	}

	resume, _, err := h.store.GetResume(ctx, userID(c))
	if err != nil {
		h.logger.Warn("resume lookup failed", zap.Error(err))
	}

	response := h.router.Process(ctx, req.Message, list, resume.Text)
	c.JSON(http.StatusOK, gin.H{"success": true, "response": response})
}

func (h *chatHandler) suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": chat.Suggestions()})
}
