package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	readHeaderTimeout      = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Server is the HTTP host.
type Server struct {
	srv             *http.Server
	shutdownTimeout time.Duration
	logger          *log.Logger
}

func NewServer(addr string, h *Handler, shutdownTimeout time.Duration) *Server {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           h.Router(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          h.logger,
	}
}

func (s *Server) Address() string { return s.srv.Addr }

// Run serves until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("startup", "event", "http_startup", "address", s.srv.Addr)

	errc := make(chan error, 1)
	go func() { errc <- s.srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down", "event", "http_shutdown", "timeout", s.shutdownTimeout)
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	<-errc
	return nil
}
