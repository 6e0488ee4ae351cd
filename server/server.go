package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/promptly-social/activity-analyzer/pkg/domain"
	"github.com/promptly-social/activity-analyzer/pkg/llm"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner
//go:generate moq -out mocks/tracking.go -pkg mocks -skip-ensure -fmt goimports . Tracking
//go:generate moq -out mocks/health.go -pkg mocks -skip-ensure -fmt goimports . Health

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	runner   Runner
	tracking Tracking
	health   Health
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Runner triggers analysis operations
type Runner interface {
	Run(ctx context.Context) (*domain.BatchAnalysisResult, error)
	RunForUsers(ctx context.Context, userIDs []string) (*domain.BatchAnalysisResult, error)
	RecoverInterrupted(ctx context.Context, timeoutMinutes, maxRecoveries int) (*domain.RecoveryResult, error)
	ValidateUserState(ctx context.Context, userID string) (*domain.StateValidation, error)
	SetThresholds(postThreshold, messageThreshold int) error
	SetRunLimits(timeoutMinutes, maxUsers int) error
	Metrics() domain.BatchMetrics
}

// Tracking reads per-user analysis state
type Tracking interface {
	GetTracking(ctx context.Context, userID string) (*domain.TrackingRecord, error)
}

// Health reports AI provider health
type Health interface {
	StatusAll() map[string]llm.ProviderHealth
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, runner Runner, tracking Tracking, health Health, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		runner:   runner,
		tracking: tracking,
		health:   health,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Router exposes the handler for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("activity-analyzer", "promptly-social", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
	s.router.Use(corsMiddleware)
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /analysis/run", s.runAnalysisHandler)
		r.HandleFunc("OPTIONS /analysis/run", s.preflightHandler)
		r.HandleFunc("POST /analysis/recover", s.recoverHandler)
		r.HandleFunc("GET /analysis/tracking/{user_id}", s.trackingHandler)
		r.HandleFunc("GET /analysis/tracking/{user_id}/validate", s.validateHandler)
	})
}

// corsMiddleware allows cross-origin calls from scheduler frontends
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		next.ServeHTTP(w, r)
	})
}

// preflightHandler answers CORS preflight requests
func (s *Server) preflightHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON with a stable error type tag
func RenderError(w http.ResponseWriter, r *http.Request, err error, errType string, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg, "error_type": errType})
}
