package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/media-gateway/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server runs the gateway's HTTP listener.
//
// Every request context derives from a server-scoped base context. When a
// graceful shutdown runs out of time the base context is canceled, so
// AniList calls still in flight (an overview fan-out, a slow retry) are
// abandoned rather than holding the process open.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	cancelInflight context.CancelFunc

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a new HTTP server from the given config and handler.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	base, cancel := context.WithCancel(context.Background())

	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			BaseContext:       func(net.Listener) context.Context { return base },
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger:         logger,
		cancelInflight: cancel,
	}
}

// Start listens on the configured address and serves until shutdown.
// Returns nil on graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until shutdown. Returns nil on graceful
// shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("starting HTTP server", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// within the ctx deadline (10s when ctx has none). Requests still running
// at the deadline have their contexts canceled and their connections
// closed; the deadline error is returned.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")

	err := s.srv.Shutdown(ctx)
	s.cancelInflight()
	if err != nil {
		s.logger.Warn("abandoning in-flight requests", slog.Any("error", err))
		return errors.Join(err, s.srv.Close())
	}
	return nil
}

// Addr returns the bound listen address once serving, else the configured
// one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.srv.Addr
}
