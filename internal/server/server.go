package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
)

// Config tunes the HTTP server.
type Config struct {
	// AllowedOrigins lists CORS origins for the pointer API. Empty allows any.
	AllowedOrigins []string
	// SessionTTL drops sessions idle for longer. Zero keeps them until deleted.
	SessionTTL time.Duration
	// MaxSessions caps open tracker sessions. Zero means no cap.
	MaxSessions int
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// maxEventBytes bounds the body of a pointer event.
const maxEventBytes = 4 << 10

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		SessionTTL:      30 * time.Minute,
		MaxSessions:     10000,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server hosts a fixed set of charts.
type Server struct {
	cfg      Config
	charts   map[string]*linechart.Chart
	names    []string
	sessions *Sessions
	metrics  *Metrics
	logger   *zap.Logger
}

// New returns a server for charts. Chart names must be unique.
func New(charts []*linechart.Chart, cfg Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		charts:   make(map[string]*linechart.Chart, len(charts)),
		sessions: NewSessions(cfg.MaxSessions),
		metrics:  NewMetrics("linechart"),
		logger:   logger,
	}
	for _, c := range charts {
		if _, dup := s.charts[c.Name()]; dup {
			return nil, fmt.Errorf("duplicate chart name %q", c.Name())
		}
		s.charts[c.Name()] = c
		s.names = append(s.names, c.Name())
	}
	return s, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(s.requestLogger)
	router.Use(s.metrics.Middleware)

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/", s.index)
	router.Get("/healthz", s.health)
	router.Handle("/metrics", s.metrics.Handler())

	router.Route("/charts/{name}", func(r chi.Router) {
		r.Get("/", s.page)
		r.Get("/chart.svg", s.svg)
		r.Get("/samples", s.samples)
		r.Get("/nearest", s.nearest)
		r.Post("/sessions", s.createSession)
		r.Post("/sessions/{id}/events", s.event)
		r.Delete("/sessions/{id}", s.deleteSession)
	})

	return router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", addr), zap.Strings("charts", s.names))
		errCh <- srv.ListenAndServe()
	}()

	if s.cfg.SessionTTL > 0 {
		go s.expireSessions(ctx)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().ShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) expireSessions(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SessionTTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Expire(s.cfg.SessionTTL); n > 0 {
				s.logger.Debug("expired sessions", zap.Int("count", n))
			}
			s.metrics.Sessions.Set(float64(s.sessions.Len()))
		}
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestID", chimiddleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) chart(r *http.Request) (*linechart.Chart, error) {
	name := chi.URLParam(r, "name")
	c, ok := s.charts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	return c, nil
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	resp := indexResponse{Charts: make([]chartSummary, 0, len(s.names))}
	for _, name := range s.names {
		c := s.charts[name]
		resp.Charts = append(resp.Charts, chartSummary{
			Name:    name,
			Samples: c.Len(),
			First:   yearLabel(c.Sample(0).Year),
			Last:    yearLabel(c.Sample(c.Len() - 1).Year),
			URL:     chartURL(name),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	c, err := s.chart(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", render.ContentType(linechart.FormatHTML))
	if err := render.HTML(w, c, render.PageOptions{Endpoint: chartURL(c.Name())}); err != nil {
		s.logger.Error("render page", zap.String("chart", c.Name()), zap.Error(err))
	}
}

func (s *Server) svg(w http.ResponseWriter, r *http.Request) {
	c, err := s.chart(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", render.ContentType(linechart.FormatSVG))
	if err := render.SVG(w, c, models.Focus{}); err != nil {
		s.logger.Error("render svg", zap.String("chart", c.Name()), zap.Error(err))
	}
}

func (s *Server) samples(w http.ResponseWriter, r *http.Request) {
	c, err := s.chart(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]sampleResponse, c.Len())
	for i := range out {
		x, y := c.Point(i)
		smp := c.Sample(i)
		out[i] = sampleResponse{Year: yearLabel(smp.Year), Value: smp.Value, X: x, Y: y}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) nearest(w http.ResponseWriter, r *http.Request) {
	c, err := s.chart(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	px, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil {
		s.writeError(w, badRequest(fmt.Errorf("query x: %w", err)))
		return
	}
	if math.IsNaN(px) || math.IsInf(px, 0) {
		s.writeError(w, badRequest(fmt.Errorf("query x: %v is not finite", px)))
		return
	}
	writeJSON(w, http.StatusOK, newFocusResponse(c.FocusAt(px)))
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	c, err := s.chart(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	id, err := s.sessions.Create(c.Name(), linechart.NewTracker(c, s.logger))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.metrics.Sessions.Set(float64(s.sessions.Len()))
	s.logger.Debug("session created", zap.String("chart", c.Name()), zap.String("session", id.String()))
	writeJSON(w, http.StatusCreated, sessionResponse{Session: id.String()})
}

func (s *Server) event(w http.ResponseWriter, r *http.Request) {
	c, err := s.chart(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	tracker, err := s.sessions.Get(c.Name(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req eventRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxEventBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, badRequest(fmt.Errorf("decode event: %w", err)))
		return
	}
	if err := validate.Struct(req); err != nil {
		s.writeError(w, badRequest(err))
		return
	}

	focus, err := tracker.Handle(req.event())
	if err != nil {
		s.writeError(w, badRequest(err))
		return
	}
	s.metrics.PointerEvents.WithLabelValues(c.Name(), req.Type).Inc()
	writeJSON(w, http.StatusOK, newFocusResponse(focus))
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	c, err := s.chart(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.sessions.Delete(c.Name(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.metrics.Sessions.Set(float64(s.sessions.Len()))
	w.WriteHeader(http.StatusNoContent)
}

type requestError struct{ err error }

func (e requestError) Error() string { return e.err.Error() }
func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error { return requestError{err} }

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var reqErr requestError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, ErrUnknownChart), errors.Is(err, ErrUnknownSession):
		status = http.StatusNotFound
	case errors.Is(err, ErrTooManySessions):
		status = http.StatusServiceUnavailable
	case errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.As(err, &reqErr):
		status = http.StatusBadRequest
	default:
		s.logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func chartURL(name string) string {
	return "/charts/" + url.PathEscape(name)
}
