// Package api exposes the HTTP surface: run lifecycle, callbacks, skills
// and credentials, served with gin.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/database"
	"github.com/weftworks/weft/pkg/queue"
	"github.com/weftworks/weft/pkg/services"
	"github.com/weftworks/weft/pkg/skills"
)

// Server wires the service layer to HTTP routes.
type Server struct {
	cfg         *config.ServerConfig
	db          *database.Client
	runs        *services.RunService
	callbacks   *services.CallbackService
	skillSvc    *services.SkillService
	credentials *services.CredentialService
	registry    *skills.Registry
	pool        *queue.WorkerPool

	engine *gin.Engine
	http   *http.Server
}

// Deps bundles the server's collaborators. Pool may be nil when the API is
// deployed without an embedded worker pool.
type Deps struct {
	DB          *database.Client
	Runs        *services.RunService
	Callbacks   *services.CallbackService
	Skills      *services.SkillService
	Credentials *services.CredentialService
	Registry    *skills.Registry
	Pool        *queue.WorkerPool
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.ServerConfig, deps Deps) *Server {
	s := &Server{
		cfg:         cfg,
		db:          deps.DB,
		runs:        deps.Runs,
		callbacks:   deps.Callbacks,
		skillSvc:    deps.Skills,
		credentials: deps.Credentials,
		registry:    deps.Registry,
		pool:        deps.Pool,
	}
	s.engine = s.buildRouter()
	return s
}

// buildRouter assembles the gin engine with middleware and routes.
func (s *Server) buildRouter() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.Use(securityHeaders())
	engine.Use(corsMiddleware(s.cfg.AllowedOrigins))

	engine.GET("/health", s.healthHandler)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/health", s.healthHandler)

		v1.POST("/runs", s.createRunHandler)
		v1.GET("/runs", s.listRunsHandler)
		v1.GET("/runs/:id", s.getRunHandler)
		v1.POST("/runs/:id/resume", s.resumeRunHandler)
		v1.POST("/runs/:id/cancel", s.cancelRunHandler)
		v1.POST("/runs/:id/rerun", s.rerunHandler)

		v1.POST("/callbacks/:token", s.callbackHandler)

		v1.GET("/skills", s.listSkillsHandler)
		v1.POST("/skills", s.saveSkillHandler)
		v1.PUT("/skills/:name", s.updateSkillHandler)
		v1.DELETE("/skills/:name", s.deleteSkillHandler)
		v1.POST("/skills/reload", s.reloadSkillsHandler)

		v1.GET("/credentials", s.listCredentialsHandler)
		v1.PUT("/credentials/:ref", s.saveCredentialHandler)
		v1.DELETE("/credentials/:ref", s.deleteCredentialHandler)
	}

	return engine
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.engine
}

// Start begins serving in a goroutine and returns immediately.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("API server listening", "addr", addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("API server failed", "error", err)
		}
	}()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
