package spotifyauth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/spotifyauth/handler"
	"github.com/dmitrymomot/spotifyauth/pkg/binder"
	"github.com/dmitrymomot/spotifyauth/pkg/config"
	"github.com/dmitrymomot/spotifyauth/pkg/cookie"
	"github.com/dmitrymomot/spotifyauth/pkg/logger"
	"github.com/dmitrymomot/spotifyauth/pkg/spotify"
)

// ConfigSource returns the Spotify credentials for the current request.
type ConfigSource func(ctx context.Context) (spotify.Config, error)

// LoadConfig reads the Spotify credentials from the environment on every
// call, so a missing variable surfaces as a failed request instead of a
// failed start.
func LoadConfig(_ context.Context) (spotify.Config, error) {
	var cfg spotify.Config
	if err := config.Read(&cfg); err != nil {
		return spotify.Config{}, err
	}
	return cfg, nil
}

// Service serves the login redirect and the OAuth callback.
type Service struct {
	configSource  ConfigSource
	clientOptions []spotify.Option
	cookies       *cookie.Manager
	logger        *slog.Logger
	errorHandler  handler.ErrorHandler[handler.Context]
}

// Option configures a Service.
type Option func(*Service)

// WithConfigSource replaces LoadConfig.
func WithConfigSource(src ConfigSource) Option {
	return func(s *Service) {
		if src != nil {
			s.configSource = src
		}
	}
}

// WithClientOptions is applied to every spotify.Client the service builds.
func WithClientOptions(opts ...spotify.Option) Option {
	return func(s *Service) {
		s.clientOptions = append(s.clientOptions, opts...)
	}
}

// WithCookieManager sets the manager used for the state cookie.
func WithCookieManager(m *cookie.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.cookies = m
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithErrorHandler handles binding and rendering failures.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// New creates a Service. By default credentials come from LoadConfig, the
// state cookie is Secure, and logs are discarded.
func New(opts ...Option) *Service {
	s := &Service{
		configSource: LoadConfig,
		cookies:      cookie.New(cookie.WithSecure(true)),
		logger:       logger.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger)
	}
	s.logger = s.logger.With(logger.Component("spotifyauth"))

	return s
}

// Handle returns a router serving /login and /callback. Every method is
// routed; the handlers apply their own method policy.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/login", handler.Wrap(s.login,
		handler.WithErrorHandler[handler.Context, LoginRequest](s.errorHandler),
	))

	r.HandleFunc("/callback", handler.Wrap(s.callback,
		handler.WithBinders[handler.Context, CallbackRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, CallbackRequest](s.errorHandler),
	))

	return r
}

// Ready reports whether the credentials needed for a full exchange are
// configured.
func (s *Service) Ready(ctx context.Context) error {
	cfg, err := s.configSource(ctx)
	if err != nil {
		return err
	}
	return cfg.ValidateExchange()
}

func (s *Service) client(cfg spotify.Config) *spotify.Client {
	return spotify.New(cfg, s.clientOptions...)
}
