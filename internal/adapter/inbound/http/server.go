package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/0xsj/overwatch-pkg/log"
)

// ServerConfig holds configuration for the accounts HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the server address.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate validates the server configuration.
func (c ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// Server wraps the HTTP server for the accounts service.
type Server struct {
	server *http.Server
	logger log.Logger
}

// NewServer creates a new accounts HTTP server.
func NewServer(cfg ServerConfig, handler *Handler, authSecret []byte, logger log.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handler.Health)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware(authSecret))
		r.Patch("/v1/accounts", handler.UpdateAccount)
		r.Patch("/v1/accounts/{accountID}", handler.UpdateAccount)
		r.Get("/v1/accounts/{accountID}", handler.GetAccount)
	})

	return &Server{
		server: &http.Server{
			Addr:         cfg.Address(),
			Handler:      r,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger,
	}, nil
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	s.logger.Info("running accounts HTTP server",
		log.String("address", s.server.Addr),
	)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping accounts HTTP server")
	return s.server.Shutdown(ctx)
}

// Address returns the server's listen address.
func (s *Server) Address() string {
	return s.server.Addr
}
