package httpserver

import "time"

type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`          // Addr is the address the server listens on.
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`    // ReadTimeout is the maximum duration for reading the entire request.
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`   // WriteTimeout must outlast the upstream token request.
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`   // IdleTimeout is the keep-alive idle limit.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"` // ShutdownTimeout is the time allowed for graceful shutdown.
}

// NewFromConfig creates a Server from cfg. Zero values keep the defaults and
// opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
