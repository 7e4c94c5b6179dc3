package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ehdc-llpg/housenumber/internal/address"
	"github.com/ehdc-llpg/housenumber/internal/batch"
	"github.com/ehdc-llpg/housenumber/internal/config"
	"github.com/ehdc-llpg/housenumber/internal/web/handlers"
	"github.com/ehdc-llpg/housenumber/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     config.ServerConfig
	logger     *zap.Logger
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server instance
func NewServer(cfg config.ServerConfig, factory *address.Factory, processor *batch.Processor, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	server := &Server{
		config: cfg,
		logger: logger,
	}

	server.setupRoutes(factory, processor)

	server.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(factory *address.Factory, processor *batch.Processor) {
	s.router = mux.NewRouter()

	parseHandler := &handlers.ParseHandler{Factory: factory, Processor: processor, Logger: s.logger}

	s.router.HandleFunc("/health", handlers.Health).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()
	// OPTIONS must match a route for the CORS middleware to answer preflights
	api.HandleFunc("/parse", parseHandler.ParseQuery).Methods("GET", "OPTIONS")
	api.HandleFunc("/parse", parseHandler.ParseBody).Methods("POST")
	api.Use(middleware.Authentication(s.config.APIKey))

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging(s.logger))
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
