package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/store"
)

type resumeHandler struct {
	store  *store.Store
	logger *zap.Logger
}

type resumeRequest struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
}

func (h *resumeHandler) upload(c *gin.Context) {
	ctx := c.Request.Context()

	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(c, http.StatusBadRequest, "Resume text is required")
		return
	}

	resume := store.Resume{
		Text:       req.Text,
		FileName:   req.FileName,
		UploadedAt: time.Now().UTC(),
	}
	uid := userID(c)
	if err := h.store.SaveResume(ctx, uid, resume); err != nil {
		h.logger.Error("saving resume failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	// Cached scores were computed against the old resume.
	if err := h.store.ClearMatchScores(ctx, uid); err != nil {
		h.logger.Warn("clearing match scores failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "resume": resume})
}

func (h *resumeHandler) get(c *gin.Context) {
	resume, found, err := h.store.GetResume(c.Request.Context(), userID(c))
	if err != nil {
		h.logger.Error("resume lookup failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to fetch resume")
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"hasResume": false, "resume": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasResume": true, "resume": resume})
}

func (h *resumeHandler) remove(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	if err := h.store.DeleteResume(ctx, uid); err != nil {
		h.logger.Error("deleting resume failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to delete resume")
		return
	}
	if err := h.store.ClearMatchScores(ctx, uid); err != nil {
		h.logger.Warn("clearing match scores failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
