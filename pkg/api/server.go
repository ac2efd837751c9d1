// Package api exposes the HTTP surface of the loop controller: webhook
// admission, daemon terminal events, the loop control plane, and
// health/metrics endpoints.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codeready-toolchain/loopd/pkg/artifacts"
	"github.com/codeready-toolchain/loopd/pkg/database"
	"github.com/codeready-toolchain/loopd/pkg/inbox"
	"github.com/codeready-toolchain/loopd/pkg/loop"
	"github.com/codeready-toolchain/loopd/pkg/queue"
	"github.com/codeready-toolchain/loopd/pkg/webhookledger"
)

// PoolHealthReporter is the slice of the worker pool the server needs.
type PoolHealthReporter interface {
	Health() *queue.PoolHealth
}

// Server is the HTTP API server.
type Server struct {
	db        *database.Client
	ledger    *webhookledger.Ledger
	registry  *loop.Registry
	inboxSvc  *inbox.Service
	artifacts *artifacts.Store
	pool      PoolHealthReporter
	logger    *slog.Logger
	engine    *gin.Engine
	httpSrv   *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(db *database.Client, ledger *webhookledger.Ledger, registry *loop.Registry, inboxSvc *inbox.Service, store *artifacts.Store, pool PoolHealthReporter, logger *slog.Logger) *Server {
	s := &Server{
		db:        db,
		ledger:    ledger,
		registry:  registry,
		inboxSvc:  inboxSvc,
		artifacts: store,
		pool:      pool,
		logger:    logger,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	engine.GET("/health", s.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/webhooks/github", s.HandleGitHubWebhook)
		v1.POST("/daemon/events", s.HandleDaemonEvent)

		loops := v1.Group("/loops")
		{
			loops.POST("", s.EnrollLoop)
			loops.GET("/pr", s.GetLoopForPR)
			loops.GET("/thread", s.GetLoopForThread)
			loops.GET("/:id", s.GetLoop)
			loops.POST("/:id/plan/:artifactId/approve", s.ApprovePlanArtifact)
			loops.POST("/:id/stop", s.StopLoop)
		}
	}

	s.engine = engine
	return s
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	resp := gin.H{
		"status":   "healthy",
		"database": dbHealth,
	}
	if s.pool != nil {
		resp["pool"] = s.pool.Health()
	}
	c.JSON(http.StatusOK, resp)
}

// requestLogger logs one line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
