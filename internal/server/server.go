// Package server serves the project form over HTTP. The page is mounted once
// and every request interacts with it under one lock, so submissions are
// handled one at a time exactly as a single user would produce them.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formview/pkg/projects"
	"github.com/goliatone/go-formview/pkg/render"
	rendertemplate "github.com/goliatone/go-formview/pkg/render/template"
	"github.com/goliatone/go-formview/pkg/view"
)

// Config wires a Server.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	Title    string
	Renderer rendertemplate.TemplateRenderer
	Document *view.Document
	// Sink receives accepted records; defaults to a LogSink.
	Sink projects.Sink
	// Form carries extra form options such as rules or the notice text.
	Form []projects.Option

	Logger zerolog.Logger
}

// Server owns the mounted page and its HTTP surface.
type Server struct {
	cfg     Config
	mu      sync.Mutex
	page    *projects.Page
	notices *projects.NoticeRecorder
	metrics *Metrics
	router  chi.Router
	logger  zerolog.Logger
	formats *render.Registry
}

// New mounts the page and builds the router. A mount failure is a setup
// fault and is returned unchanged.
func New(cfg Config) (*Server, error) {
	if cfg.Renderer == nil {
		return nil, errors.New("server: template renderer is required")
	}
	if cfg.Document == nil {
		return nil, errors.New("server: document is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Sink == nil {
		cfg.Sink = projects.NewLogSink(cfg.Logger)
	}

	s := &Server{
		cfg:     cfg,
		notices: &projects.NoticeRecorder{},
		metrics: NewMetrics(""),
		logger:  cfg.Logger,
		formats: render.NewDefaultRegistry(cfg.Renderer),
	}

	opts := append([]projects.Option{}, cfg.Form...)
	opts = append(opts,
		projects.WithLogger(cfg.Logger),
		projects.WithNotifier(s.notices),
		projects.WithSink(s.metrics.Sink(cfg.Sink)),
	)
	page, err := projects.Mount(cfg.Document, opts...)
	if err != nil {
		return nil, fmt.Errorf("server: mount page: %w", err)
	}
	s.page = page
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(newLoggingMiddleware(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleSubmit)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Metrics returns the server counters.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info().Msg("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writePage(w, r, http.StatusOK, render.Options{})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	fields := projects.Fields{
		Title:       r.PostForm.Get(projects.FieldTitle),
		Description: r.PostForm.Get(projects.FieldDescription),
		People:      r.PostForm.Get(projects.FieldPeople),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	form := s.page.Form()
	form.Fill(fields)
	outcome := form.Submit()
	s.metrics.Observe(outcome)
	options := render.Options{
		Notice: strings.Join(render.MergeMessages(s.notices.Drain()), " "),
		Errors: render.FieldErrors(outcome.Result),
	}

	if outcome.Submitted {
		s.writePage(w, r, http.StatusOK, options)
		return
	}

	s.logger.Debug().
		Str("request_id", middleware.GetReqID(r.Context())).
		Strs("fields", outcome.Result.Failed()).
		Msg("submission rejected")

	// Retained values belong to this response only; the page is shared by
	// every client.
	s.writePage(w, r, http.StatusUnprocessableEntity, options)
	form.Fill(projects.Fields{})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// writePage renders the page in the negotiated format; the caller holds s.mu.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, options render.Options) {
	renderer, err := s.formats.Negotiate(r.Header.Get("Accept"), render.FormatHTML)
	if err != nil {
		s.logger.Error().Err(err).Msg("negotiate format")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	options.Title = s.cfg.Title

	out, err := renderer.Render(r.Context(), s.page, options)
	if err != nil {
		s.logger.Error().Err(err).Str("format", renderer.Name()).Msg("render page")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

func newLoggingMiddleware(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			if r.URL.Path == "/healthz" || r.URL.Path == "/metrics" {
				return
			}
			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("http request")
		})
	}
}
