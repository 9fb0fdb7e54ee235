// Package http serves the prediction and advisory APIs.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server wraps the standard http.Server with the middleware chain.
type Server struct {
	server *http.Server
	config ServerConfig
	logger *zap.Logger
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port              int      `yaml:"port"`
	TimeoutSeconds    int      `yaml:"timeout_seconds"`
	AllowedOrigins    []string `yaml:"allowed_origins"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
	Burst             int      `yaml:"burst"`
}

// DefaultServerConfig returns the default listener settings.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:              8080,
		TimeoutSeconds:    30,
		AllowedOrigins:    []string{"*"},
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

func (c ServerConfig) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// NewServer builds the mux, wraps it in the middleware chain, and returns a
// server ready to start.
func NewServer(config ServerConfig, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	SetLogger(log)

	mux := http.NewServeMux()
	RegisterHandlers(mux)

	// Gzip must wrap outside Timeout: the timeout response goes through the
	// gzip writer, so its body matches the Content-Encoding header.
	chain := Chain(
		RecoveryMiddleware(log),
		LoggerMiddleware(log),
		SecurityHeadersMiddleware,
		CORSMiddleware(config.AllowedOrigins),
		RateLimitMiddleware(config.RequestsPerSecond, config.Burst),
		GzipMiddleware,
		TimeoutMiddleware(config.timeout()),
	)
	handler := chain(mux)

	// WriteTimeout stays unset: it would cut off long-lived websocket
	// advisory connections. TimeoutMiddleware bounds regular requests.
	return &Server{
		server: &http.Server{
			Addr:        fmt.Sprintf(":%d", config.Port),
			Handler:     handler,
			ReadTimeout: config.timeout(),
			IdleTimeout: 120 * time.Second,
		},
		config: config,
		logger: log,
	}
}

// Start blocks serving requests until the server is stopped.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}
