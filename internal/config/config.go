package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultSSHHost            = "0.0.0.0"
	defaultSSHPort            = 2222
	defaultHostKeyPath        = ".data/host_ed25519"
	defaultIdleTimeout        = 10 * time.Minute
	defaultMaxSessions        = 32
	defaultRateLimitPerSecond = 5
	defaultRateBurst          = 10
	defaultHTTPHost           = "0.0.0.0"
	defaultHTTPPort           = 8080
	defaultAssetDir           = "assets"
	defaultShutdownTimeout    = 10 * time.Second
	defaultLogLevel           = "info"
	maximumConfiguredSessions = 1024
)

// Config captures startup settings for every folio host.
type Config struct {
	SSHHost            string
	SSHPort            int
	HostKeyPath        string
	IdleTimeout        time.Duration
	MaxSessions        int
	RateLimitPerSecond int
	RateBurst          int

	HTTPHost string
	HTTPPort int
	AssetDir string

	ContentPath     string
	LogLevel        log.Level
	ForceColor      bool
	ForceMono       bool
	ShutdownTimeout time.Duration
}

// SSHAddress is host:port for the SSH listener.
func (c Config) SSHAddress() string { return fmt.Sprintf("%s:%d", c.SSHHost, c.SSHPort) }

// HTTPAddress is host:port for the HTTP listener.
func (c Config) HTTPAddress() string { return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort) }

// LoadDotEnv loads variables from the given .env files without overriding
// variables already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// LoadFromEnv loads runtime configuration from FOLIO_* environment variables.
// Every invalid variable is reported in one error.
func LoadFromEnv() (Config, error) {
	r := &reader{}

	cfg := Config{
		SSHHost:            r.text("FOLIO_SSH_HOST", defaultSSHHost),
		SSHPort:            r.integer("FOLIO_SSH_PORT", defaultSSHPort, 0, 65535),
		HostKeyPath:        r.text("FOLIO_SSH_HOST_KEY_PATH", defaultHostKeyPath),
		IdleTimeout:        r.duration("FOLIO_SSH_IDLE_TIMEOUT", defaultIdleTimeout),
		MaxSessions:        r.integer("FOLIO_SSH_MAX_SESSIONS", defaultMaxSessions, 1, maximumConfiguredSessions),
		RateLimitPerSecond: r.integer("FOLIO_SSH_RATE_LIMIT_PER_SECOND", defaultRateLimitPerSecond, 1, 10000),
		RateBurst:          r.integer("FOLIO_SSH_RATE_BURST", defaultRateBurst, 1, 10000),
		HTTPHost:           r.text("FOLIO_HTTP_HOST", defaultHTTPHost),
		HTTPPort:           r.integer("FOLIO_HTTP_PORT", defaultHTTPPort, 0, 65535),
		AssetDir:           r.optional("FOLIO_ASSET_DIR", defaultAssetDir),
		ContentPath:        r.optional("FOLIO_CONTENT_PATH", ""),
		LogLevel:           r.level("FOLIO_LOG_LEVEL", defaultLogLevel),
		ForceColor:         r.boolean("FOLIO_FORCE_COLOR"),
		ForceMono:          r.boolean("FOLIO_FORCE_MONO"),
		ShutdownTimeout:    r.duration("FOLIO_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	cleanHostKeyPath := filepath.Clean(cfg.HostKeyPath)
	if cfg.HostKeyPath != "" && cleanHostKeyPath == "." {
		r.fail("FOLIO_SSH_HOST_KEY_PATH must not resolve to current directory")
	}
	cfg.HostKeyPath = cleanHostKeyPath

	if err := r.err(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type reader struct {
	problems []string
}

func (r *reader) fail(format string, args ...any) {
	r.problems = append(r.problems, fmt.Sprintf(format, args...))
}

func (r *reader) err() error {
	if len(r.problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(r.problems, "; "))
}

func (r *reader) text(key, fallback string) string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v := strings.TrimSpace(raw)
	if v == "" {
		r.fail("%s must not be empty", key)
	}
	return v
}

func (r *reader) optional(key, fallback string) string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return strings.TrimSpace(raw)
}

func (r *reader) integer(key string, fallback, min, max int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		r.fail("%s must be an integer: %v", key, err)
		return fallback
	}
	if parsed < min || parsed > max {
		r.fail("%s must be between %d and %d", key, min, max)
	}
	return parsed
}

func (r *reader) duration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		r.fail("%s must be a valid duration: %v", key, err)
		return fallback
	}
	if parsed <= 0 {
		r.fail("%s must be greater than 0", key)
	}
	return parsed
}

func (r *reader) boolean(key string) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		r.fail("%s must be a boolean: %v", key, err)
	}
	return b
}

func (r *reader) level(key, fallback string) log.Level {
	raw := fallback
	if v, ok := os.LookupEnv(key); ok {
		raw = strings.TrimSpace(v)
	}
	lvl, err := log.ParseLevel(raw)
	if err != nil {
		r.fail("%s: %v", key, err)
		return log.InfoLevel
	}
	return lvl
}
