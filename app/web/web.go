// Package web implements the REST API server for job listings
package web

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/talentflow/app/enums"
	"github.com/umputun/talentflow/app/jobs"
)

//go:generate moq -out mocks/repository.go -pkg mocks -skip-ensure -fmt goimports . Repository
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// TestModeFailureRate is the reorder failure probability used in test mode
const TestModeFailureRate = 0.3

// Server represents the web server
type Server struct {
	repo               Repository
	notifier           Notifier
	version            string
	passwordHash       string        // bcrypt hash for basic auth on writes
	writeLimit         float64       // max write requests per second per ip, 0 = unlimited
	reorderFailureRate float64       // probability of injected reorder failure
	random             func() float64 // random source for fault injection
	startTime          time.Time
}

// Repository defines job operations used by the server, see jobs.Repository
type Repository interface {
	List(ctx context.Context, q jobs.Query) (jobs.Page, error)
	Get(ctx context.Context, idOrSlug string) (jobs.Job, error)
	Create(ctx context.Context, in jobs.Input) (jobs.Job, error)
	Update(ctx context.Context, id string, upd jobs.Update) (jobs.Job, error)
	UpdateStatus(ctx context.Context, id string, status enums.JobStatus) (jobs.Job, error)
	Reorder(ctx context.Context, ids []string) ([]jobs.Job, error)
}

// Notifier gets called after every successful job mutation
type Notifier interface {
	Notify(ctx context.Context, event enums.EventType, job jobs.Job) error
}

// Config holds server configuration
type Config struct {
	Repository         Repository
	Notifier           Notifier // optional
	Version            string
	PasswordHash       string  // bcrypt hash for basic auth on writes (empty to disable)
	WriteLimit         float64 // write requests per second, 0 to disable
	ReorderFailureRate float64 // 0..1, probability of simulated reorder failure
	Random             func() float64
}

// New creates a new web server
func New(cfg Config) (*Server, error) {
	if cfg.Repository == nil {
		return nil, fmt.Errorf("web server initialization failed: Repository is required")
	}
	if cfg.ReorderFailureRate < 0 || cfg.ReorderFailureRate > 1 {
		return nil, fmt.Errorf("web server initialization failed: invalid reorder failure rate %v", cfg.ReorderFailureRate)
	}

	s := &Server{
		repo:               cfg.Repository,
		notifier:           cfg.Notifier,
		version:            cfg.Version,
		passwordHash:       cfg.PasswordHash,
		writeLimit:         cfg.WriteLimit,
		reorderFailureRate: cfg.ReorderFailureRate,
		random:             cfg.Random,
		startTime:          time.Now(),
	}
	if s.random == nil {
		s.random = rand.Float64
	}
	if s.reorderFailureRate > 0 {
		log.Printf("[WARN] reorder fault injection enabled, failure rate %.2f", s.reorderFailureRate)
	}
	return s, nil
}

// Run starts the web server and blocks until context canceled
func (s *Server) Run(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// Handler returns the http.Handler serving the API
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("talentflow", "umputun", s.version),
		rest.Ping,
		rest.Trace,
		rest.SizeLimit(64*1024), // 64KB max request size
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
	)

	router.Mount("/api").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)

		api.HandleFunc("GET /jobs", s.handleListJobs)
		api.HandleFunc("GET /jobs/{id}", s.handleGetJob)

		// mutating endpoints, optionally protected and rate limited
		writes := api.Group()
		if s.passwordHash != "" {
			log.Printf("[INFO] authentication enabled for write endpoints")
			writes.Use(s.authMiddleware)
		}
		if s.writeLimit > 0 {
			writes.Use(tollbooth.HTTPMiddleware(s.writeLimiter()))
		}
		writes.HandleFunc("POST /jobs", s.handleCreateJob)
		writes.HandleFunc("POST /jobs/reorder", s.handleReorderJobs)
		writes.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
		writes.HandleFunc("PATCH /jobs/{id}/status", s.handleUpdateStatus)
	})

	router.Mount("/api/v1").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)
		api.HandleFunc("GET /status", s.handleAPIStatus)
	})

	return router
}

// writeLimiter makes per-ip limiter for write endpoints
func (s *Server) writeLimiter() *limiter.Limiter {
	lmt := tollbooth.NewLimiter(s.writeLimit, nil)
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
	lmt.SetMessageContentType("application/json")
	lmt.SetMessage(`{"error":"Too many requests"}`)
	return lmt
}

// notify sends event to notifier, if any. Failures are logged only.
func (s *Server) notify(ctx context.Context, event enums.EventType, job jobs.Job) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, event, job); err != nil {
		log.Printf("[WARN] failed to send %s notification for job %s: %v", event, job.ID, err)
	}
}
