package router

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"golang.org/x/time/rate"
)

const (
	defaultRatePerSecond = 5
	defaultBurst         = 10
	limiterIdleTTL       = 10 * time.Minute
)

// RateLimitMiddleware enforces per-IP session admission using a token bucket.
func RateLimitMiddleware(perSecond, burst int, logger *log.Logger) wish.Middleware {
	limiters := newLimiterTable(perSecond, burst)

	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			now := time.Now().UTC()
			ip := remoteIP(s)
			if !limiters.allow(ip, now) {
				logger.Warn("session throttled", "event", "rate_limit_throttled", "remote_ip", ip)
				wish.Fatalln(s, "rate limit exceeded")
				return
			}
			next(s)
		}
	}
}

// MaxSessionsMiddleware caps the number of concurrently running sessions.
func MaxSessionsMiddleware(limit int, logger *log.Logger) wish.Middleware {
	if limit <= 0 {
		limit = 1
	}
	var active atomic.Int64

	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			if n := active.Add(1); n > int64(limit) {
				active.Add(-1)
				logger.Warn("session rejected", "event", "max_sessions_reached", "remote_ip", remoteIP(s), "max_sessions", limit)
				wish.Fatalln(s, "server is at capacity, try again later")
				return
			}
			defer active.Add(-1)
			next(s)
		}
	}
}

type limiterEntry struct {
	limiter *rate.Limiter
	seen    time.Time
}

type limiterTable struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

func newLimiterTable(perSecond, burst int) *limiterTable {
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &limiterTable{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		entries: make(map[string]*limiterEntry),
	}
}

func (t *limiterTable) allow(ip string, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Sub(t.lastSweep) > limiterIdleTTL {
		for key, e := range t.entries {
			if now.Sub(e.seen) > limiterIdleTTL {
				delete(t.entries, key)
			}
		}
		t.lastSweep = now
	}

	e, ok := t.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.entries[ip] = e
	}
	e.seen = now
	return e.limiter.AllowN(now, 1)
}

func (t *limiterTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func remoteIP(s ssh.Session) string {
	remote := s.RemoteAddr()
	if remote == nil {
		return "unknown"
	}

	host, _, err := net.SplitHostPort(remote.String())
	if err != nil {
		return remote.String()
	}

	if host == "" {
		return "unknown"
	}
	return host
}
