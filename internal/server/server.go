package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"

	"folio/internal/config"
	"folio/internal/page"
	"folio/internal/router"
	"folio/internal/theme"
	"folio/internal/tui"
)

const (
	version                = "dev"
	defaultShutdownTimeout = 10 * time.Second
)

// Runtime wires config, middleware and the Wish server as a testable unit.
type Runtime struct {
	cfg           config.Config
	middlewareIDs []string
	server        *ssh.Server
	logger        *log.Logger
}

// New builds an SSH host that serves one page root per session. chain[0]
// is the outermost middleware.
func New(cfg config.Config, chain []router.Descriptor, pg page.Page, logger *log.Logger) (*Runtime, error) {
	if logger == nil {
		logger = log.Default()
	}

	middleware := append(router.MiddlewareFromDescriptors(chain),
		activeterm.Middleware(),
		bm.Middleware(teaHandler(pg, cfg)),
	)
	handler := router.Compose(func(ssh.Session) {}, middleware)

	sshServer, err := wish.NewServer(
		wish.WithAddress(cfg.SSHAddress()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		withHandler(handler),
	)
	if err != nil {
		return nil, fmt.Errorf("build ssh server: %w", err)
	}

	ids := make([]string, 0, len(chain))
	for _, descriptor := range chain {
		ids = append(ids, descriptor.Name)
	}

	return &Runtime{cfg: cfg, middlewareIDs: ids, server: sshServer, logger: logger}, nil
}

func withHandler(h ssh.Handler) ssh.Option {
	return func(s *ssh.Server) error {
		s.Handler = h
		return nil
	}
}

func (r *Runtime) MiddlewareIDs() []string {
	out := make([]string, len(r.middlewareIDs))
	copy(out, r.middlewareIDs)
	return out
}

func (r *Runtime) Address() string {
	return r.server.Addr
}

// Run serves until ctx is done or the process receives SIGINT/SIGTERM.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	r.logger.Info("startup",
		"event", "startup",
		"version", version,
		"address", r.Address(),
		"middleware", r.middlewareIDs,
		"host_key_path", r.cfg.HostKeyPath,
		"idle_timeout", r.cfg.IdleTimeout,
		"max_sessions", r.cfg.MaxSessions,
	)

	errc := make(chan error, 1)
	go func() { errc <- r.server.ListenAndServe() }()

	select {
	case err := <-errc:
		if err == nil || errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve ssh: %w", err)
	case <-ctx.Done():
	}

	timeout := r.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	r.logger.Info("shutting down", "event", "shutdown", "timeout", timeout)
	if err := r.server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("shutdown ssh: %w", err)
	}
	<-errc
	return nil
}

func teaHandler(pg page.Page, cfg config.Config) bm.Handler {
	opts := theme.ProfileOptions{ForceColor: cfg.ForceColor, ForceMono: cfg.ForceMono}
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := s.Pty()
		return sessionModel(pg, pty, bm.MakeRenderer(s), opts), []tea.ProgramOption{tea.WithAltScreen()}
	}
}

// sessionModel mounts a fresh page root sized to the session's terminal.
// Every session starts dark regardless of what other sessions toggled.
func sessionModel(pg page.Page, pty ssh.Pty, r *lipgloss.Renderer, opts theme.ProfileOptions) tui.Model {
	if opts.ForceColor || opts.ForceMono {
		r.SetColorProfile(theme.ColorProfile(pty.Term, opts))
	}
	return tui.New(pg, tui.Options{
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
		Renderer: r,
	})
}
