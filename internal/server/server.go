// Package server exposes plan generation and subject outlines over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/outline"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/workflow"
)

const shutdownTimeout = 10 * time.Second

// Planner runs the plan workflow.
type Planner interface {
	Run(ctx context.Context, in workflow.Input) (*workflow.Result, error)
}

// OutlineGenerator produces one subject outline.
type OutlineGenerator interface {
	Generate(ctx context.Context, subject string) (*outline.SubjectOutline, error)
}

// Options configures a Server.
type Options struct {
	Addr    string
	Version string
	Logger  *log.Logger
	Planner Planner
	// Outlines may be nil; /outline then answers 503.
	Outlines           OutlineGenerator
	OutlineConcurrency int
}

// Server is the HTTP service.
type Server struct {
	opts   Options
	logger *log.Logger
	engine *gin.Engine
}

// New builds a Server with its routes and middleware.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Planner == nil {
		opts.Planner = workflow.New(opts.Logger)
	}
	if opts.OutlineConcurrency <= 0 {
		opts.OutlineConcurrency = 4
	}
	if opts.Version == "" {
		opts.Version = "(devel)"
	}

	registerValidators()
	gin.SetMode(gin.ReleaseMode)

	s := &Server{opts: opts, logger: opts.Logger}

	r := gin.New()
	r.Use(requestID(), accessLog(s.logger), recovery(s.logger), cors())
	s.routes(r)
	s.engine = r

	return s
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/health", s.health())
	r.POST("/plan", s.createPlan())
	r.POST("/outline", s.createOutlines())
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
