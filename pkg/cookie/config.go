package cookie

import "net/http"

// Config holds cookie manager configuration
type Config struct {
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"true"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// Boolean fields are always applied; empty strings and a zero SameSite keep
// the manager defaults.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	configOpts = append(configOpts, WithSecure(cfg.Secure), WithHTTPOnly(cfg.HttpOnly))
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
