package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/page"
	"folio/internal/router"
	"folio/internal/server"
	"folio/internal/theme"
	"folio/internal/tui"
	"folio/internal/view"
	"folio/internal/web"
)

var errNotATerminal = errors.New("stdout is not a terminal")

// app is what every subcommand shares once the persistent pre-run is done.
type app struct {
	stdout io.Writer
	stderr io.Writer

	envFile     string
	contentPath string
	logLevel    string

	cfg    config.Config
	logger *log.Logger
	page   page.Page
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "folio",
		Short: "Personal portfolio page with a light/dark theme toggle",
		Long: `folio renders a one-page portfolio in the terminal and the browser.

The page mounts in the dark theme. Press t (or follow the toggle link) to
switch to the other theme; the whole page re-renders in one step.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading FOLIO_* variables")
	root.PersistentFlags().StringVar(&a.contentPath, "content", "", "portfolio YAML file (default: embedded)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(a.sshCmd(), a.httpCmd(), a.viewCmd(), a.renderCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("content") {
		cfg.ContentPath = a.contentPath
	}
	if cmd.Flags().Changed("log-level") {
		lvl, err := log.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		cfg.LogLevel = lvl
	}
	a.cfg = cfg

	a.logger = log.NewWithOptions(a.stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "folio",
		Level:           cfg.LogLevel,
	})

	p, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	a.page = page.New(p, time.Now().Year())
	return nil
}

func (a *app) sshCmd() *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the page over SSH, one session per visitor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.SSHHost = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.SSHPort = port
			}

			chain := router.DefaultChain(router.Limits{
				RatePerSecond: a.cfg.RateLimitPerSecond,
				Burst:         a.cfg.RateBurst,
				MaxSessions:   a.cfg.MaxSessions,
			}, a.logger)

			runtime, err := server.New(a.cfg, chain, a.page, a.logger)
			if err != nil {
				return err
			}
			return runtime.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides FOLIO_SSH_HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides FOLIO_SSH_PORT)")
	return cmd
}

func (a *app) httpCmd() *cobra.Command {
	var host, assets string
	var port int

	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the page as HTML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.HTTPHost = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.HTTPPort = port
			}
			if cmd.Flags().Changed("assets") {
				a.cfg.AssetDir = assets
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h := web.NewHandler(a.page, a.cfg.AssetDir, a.logger)
			return web.NewServer(a.cfg.HTTPAddress(), h, a.cfg.ShutdownTimeout).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides FOLIO_HTTP_HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides FOLIO_HTTP_PORT)")
	cmd.Flags().StringVar(&assets, "assets", "", "directory served under /assets (overrides FOLIO_ASSET_DIR)")
	return cmd
}

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the page in this terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, ok := a.stdout.(*os.File)
			if !ok || !term.IsTerminal(out.Fd()) {
				return errNotATerminal
			}

			width, height, err := term.GetSize(out.Fd())
			if err != nil {
				width, height = 0, 0
			}

			m := tui.New(a.page, tui.Options{
				Width:    width,
				Height:   height,
				Renderer: a.renderer(out),
			})
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out), tea.WithContext(cmd.Context())).Run()
			if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("run view: %w", err)
			}
			return nil
		},
	}
}

func (a *app) renderCmd() *cobra.Command {
	var mode, format string
	var width int
	var plain bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one static render of the page to stdout",
		Example: `  folio render --mode light --format html > index.html
  folio render --format ansi --width 100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := theme.ParseMode(mode)
			if err != nil {
				return fmt.Errorf("--mode: %w", err)
			}
			state := view.StateFor(m)

			switch strings.ToLower(format) {
			case "html":
				return web.Render(a.stdout, a.page, state)
			case "ansi":
				out := a.page.Render(state.Scope(a.renderer(a.stdout), width))
				if plain {
					out = ansi.Strip(out)
				}
				_, err := fmt.Fprintln(a.stdout, out)
				return err
			default:
				return fmt.Errorf("--format: unsupported format %q (want ansi or html)", format)
			}
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(theme.ModeDark), "theme to render (dark or light)")
	cmd.Flags().StringVar(&format, "format", "ansi", "output format (ansi or html)")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "terminal width for the ansi format")
	cmd.Flags().BoolVar(&plain, "plain", false, "strip escape sequences from the ansi format")
	return cmd
}

// renderer targets w, honouring FOLIO_FORCE_COLOR and FOLIO_FORCE_MONO.
func (a *app) renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	opts := theme.ProfileOptions{ForceColor: a.cfg.ForceColor, ForceMono: a.cfg.ForceMono}
	if opts.ForceColor || opts.ForceMono {
		r.SetColorProfile(theme.ColorProfile(os.Getenv("TERM"), opts))
	}
	return r
}
