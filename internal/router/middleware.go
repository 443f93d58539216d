package router

import (
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/logging"
)

// Descriptor names a middleware so the startup log can list the chain.
type Descriptor struct {
	Name       string
	Middleware wish.Middleware
}

// Limits bound how sessions are admitted.
type Limits struct {
	RatePerSecond int
	Burst         int
	MaxSessions   int
}

// DefaultChain is the startup middleware chain, outermost first.
func DefaultChain(limits Limits, logger *log.Logger) []Descriptor {
	return []Descriptor{
		{Name: "session-log", Middleware: logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel)},
		{Name: "rate-limit", Middleware: RateLimitMiddleware(limits.RatePerSecond, limits.Burst, logger)},
		{Name: "max-sessions", Middleware: MaxSessionsMiddleware(limits.MaxSessions, logger)},
	}
}

// MiddlewareFromDescriptors returns the middleware in chain order.
func MiddlewareFromDescriptors(chain []Descriptor) []wish.Middleware {
	out := make([]wish.Middleware, 0, len(chain))
	for _, d := range chain {
		out = append(out, d.Middleware)
	}
	return out
}

// Compose wraps h so that chain[0] runs first.
func Compose(h ssh.Handler, chain []wish.Middleware) ssh.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}
