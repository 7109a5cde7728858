// Package server exposes the HTTP API: job search and scoring, resume
// storage, application tracking and the chat assistant.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/chat"
	"github.com/akhila-3010/job-tracker/internal/jobs"
	"github.com/akhila-3010/job-tracker/internal/match"
	"github.com/akhila-3010/job-tracker/internal/store"
)

const defaultUserID = "default"

// Deps carries everything the handlers need.
type Deps struct {
	Source  *jobs.Source
	Matcher *match.Matcher
	Chat    *chat.Router
	Store   *store.Store
	Logger  *zap.Logger
}

type Server struct {
	engine *gin.Engine
	logger *zap.Logger
}

func New(d Deps) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(d.Logger))

	s := &Server{engine: engine, logger: d.Logger}

	jobsH := &jobsHandler{source: d.Source, matcher: d.Matcher, store: d.Store, logger: d.Logger}
	chatH := &chatHandler{source: d.Source, router: d.Chat, store: d.Store, logger: d.Logger}
	resumeH := &resumeHandler{store: d.Store, logger: d.Logger}
	appsH := &applicationsHandler{store: d.Store, logger: d.Logger}

	api := engine.Group("/api")
	api.GET("/health", health)

	api.GET("/jobs", jobsH.list)
	api.GET("/jobs/best-matches", jobsH.bestMatches)
	api.GET("/jobs/:id", jobsH.get)
	api.POST("/jobs/clear-cache", jobsH.clearCache)

	api.POST("/chat", chatH.process)
	api.GET("/chat/suggestions", chatH.suggestions)

	api.POST("/resume", resumeH.upload)
	api.GET("/resume", resumeH.get)
	api.DELETE("/resume", resumeH.remove)

	api.GET("/applications", appsH.list)
	api.POST("/applications", appsH.create)
	api.PATCH("/applications/:id", appsH.update)
	api.DELETE("/applications/:id", appsH.remove)

	return s
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func userID(c *gin.Context) string {
	if id := c.Query("userId"); id != "" {
		return id
	}
	return defaultUserID
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
