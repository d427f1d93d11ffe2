// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown on context cancellation, SIGINT or SIGTERM.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/spotifyauth/pkg/logger"
)

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	startHooks      []func(addr string)
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		readTimeout:     15 * time.Second,
		writeTimeout:    30 * time.Second,
		idleTimeout:     120 * time.Second,
		shutdownTimeout: 5 * time.Second,
		logger:          logger.Discard(),
	}
}

type Server struct {
	cfg  *config
	mu   sync.Mutex
	srv  *http.Server
	once sync.Once
}

func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Server{cfg: cfg}
}

// Run binds the listener and serves handler until ctx is cancelled, the
// process receives SIGINT/SIGTERM, or Shutdown is called. A nil handler
// serves 404 for every request.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}

	ln, err := net.Listen("tcp", s.cfg.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  s.cfg.readTimeout,
		WriteTimeout: s.cfg.writeTimeout,
		IdleTimeout:  s.cfg.idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.mu.Unlock()

	addr := ln.Addr().String()
	s.cfg.logger.Info("http server started", slog.String("addr", addr), logger.Component("httpserver"))
	for _, h := range s.cfg.startHooks {
		h(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		_ = s.Shutdown(context.Background())
		runErr = <-errCh
	case sig := <-stop:
		s.cfg.logger.Info("shutdown signal received", slog.String("signal", sig.String()), logger.Component("httpserver"))
		_ = s.Shutdown(context.Background())
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown gracefully stops the server within the configured shutdown
// timeout. It is safe to call more than once and before Run.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		s.cfg.logger.Info("http server stopped", logger.Error(err), logger.Component("httpserver"))
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
