package httpserver

import (
	"log/slog"
	"time"
)

type Option func(*config)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(c *config) { c.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithReadTimeout: duration must be > 0")
	}
	return func(c *config) { c.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithWriteTimeout: duration must be > 0")
	}
	return func(c *config) { c.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithIdleTimeout: duration must be > 0")
	}
	return func(c *config) { c.idleTimeout = d }
}

func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(c *config) { c.shutdownTimeout = d }
}

// WithLogger sets the logger used for lifecycle messages. Nil keeps the
// discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartHook registers a callback invoked once the listener is bound,
// with the actual listen address.
func WithStartHook(h func(addr string)) Option {
	if h == nil {
		panic("WithStartHook: nil hook")
	}
	return func(c *config) {
		c.startHooks = append(c.startHooks, h)
	}
}
