package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"MarketAdvisor/internal/collector"
	"MarketAdvisor/internal/recorder"
	"MarketAdvisor/internal/universe"
)

// Config holds server configuration.
type Config struct {
	Port      int
	Log       zerolog.Logger
	Collector *collector.Collector
	Ranker    *universe.Ranker
	Recorder  recorder.Recorder
}

// Server exposes the analysis and recommendation API over HTTP.
type Server struct {
	router    *chi.Mux
	server    *http.Server
	log       zerolog.Logger
	collector *collector.Collector
	ranker    *universe.Ranker
	recorder  recorder.Recorder
}

// New creates a new HTTP server.
func New(cfg Config) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		collector: cfg.Collector,
		ranker:    cfg.Ranker,
		recorder:  cfg.Recorder,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // universe scans fan out many upstream fetches
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(120 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/stocks", func(r chi.Router) {
			r.Get("/recommendations", s.handleStockRecommendations)
			r.Get("/{symbol}/analysis", s.handleStockAnalysis)
		})
		r.Route("/funds", func(r chi.Router) {
			r.Get("/recommendations", s.handleFundRecommendations)
			r.Get("/{symbol}/analysis", s.handleFundAnalysis)
		})
		r.Get("/market/overview", s.handleMarketOverview)
	})
}

// Start starts the HTTP server and blocks until it exits.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
