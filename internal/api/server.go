// Package api serves worksheet generation over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/worksheetz/internal/render"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

const maxBodyBytes = 1 << 20

// Options configures a Server.
type Options struct {
	Builder  *worksheet.Builder
	Logger   *slog.Logger
	PageSize render.PageSize
	FontPath string

	// AccessLog receives gin's request log lines. Nil disables it.
	AccessLog io.Writer
}

// Server wraps a gin router.
type Server struct {
	router   *gin.Engine
	builder  *worksheet.Builder
	logger   *slog.Logger
	pageSize render.PageSize
	fontPath string
}

// New wires routes and returns a Server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	builder := opts.Builder
	if builder == nil {
		builder = worksheet.NewBuilder(logger)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.AccessLog != nil {
		router.Use(gin.LoggerWithWriter(opts.AccessLog))
	}

	s := &Server{
		router:   router,
		builder:  builder,
		logger:   logger,
		pageSize: opts.PageSize,
		fontPath: opts.FontPath,
	}
	s.setupRoutes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.healthz)

	api := s.router.Group("/api")
	api.GET("/options", s.options)
	api.POST("/worksheets", s.createWorksheet)
	api.POST("/worksheets/pdf", s.worksheetPDF)
	api.POST("/worksheets/compose", s.compose)
	api.POST("/worksheets/score", s.score)
}
