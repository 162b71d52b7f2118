package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/content"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/metrics"
	"go.uber.org/zap"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

// ContentSource is what the pages and the API read from.
type ContentSource interface {
	content.FailSoftSource
	content.StrictSource
	Invalidate(ctx context.Context) error
}

type Config struct {
	Version        string
	Port           string
	Assets         http.FileSystem
	Templates      ExecuteTemplateFunc
	Content        ContentSource
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	Location       *time.Location
	WebhookSecret  string
	RateLimit      int
	RequestTimeout time.Duration
	SermonLimit    int
}

type Server struct {
	version       string
	port          string
	server        *http.Server
	assets        http.FileSystem
	tmplFunc      ExecuteTemplateFunc
	content       ContentSource
	metrics       *metrics.Metrics
	logger        *zap.Logger
	loc           *time.Location
	webhookSecret string
	rateLimit     int
	timeout       time.Duration
	sermonLimit   int
	now           func() time.Time
}

func NewServer(cfg Config) *Server {
	s := &Server{
		version:       cfg.Version,
		port:          cfg.Port,
		assets:        cfg.Assets,
		tmplFunc:      cfg.Templates,
		content:       cfg.Content,
		metrics:       cfg.Metrics,
		logger:        cfg.Logger,
		loc:           cfg.Location,
		webhookSecret: cfg.WebhookSecret,
		rateLimit:     cfg.RateLimit,
		timeout:       cfg.RequestTimeout,
		sermonLimit:   cfg.SermonLimit,
		now:           time.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.rateLimit <= 0 {
		s.rateLimit = 500
	}
	if s.timeout <= 0 {
		s.timeout = 60 * time.Second
	}

	s.server = &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start blocks until the server stops. A clean shutdown returns nil.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.server.Close()
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
